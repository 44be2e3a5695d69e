package pool

import "errors"

// ErrOutOfDomain is returned by a pool's checked accessor when asked for a
// vertex id outside the pool's fixed domain (e.g. a grid coordinate outside
// the pool's width/height, or a dense index outside 0..N).
var ErrOutOfDomain = errors.New("pool: vertex id is outside the pool's domain")
