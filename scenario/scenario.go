package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bitpath/bitgrid"
)

// Record is a single scenario line: a start/goal pair on a named map, with
// the path length a reference implementation produced for it.
type Record struct {
	Bucket         int
	MapName        string
	MapWidth       int
	MapHeight      int
	Start          bitgrid.Cell
	Goal           bitgrid.Cell
	ExpectedLength float64
}

// Parse reads a scenario file from r and returns its records in file order.
// Returns ErrMalformed, wrapped with the offending detail, if the version
// header or a record line does not parse.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: expected version header, got EOF", ErrMalformed)
	}
	version := strings.TrimSpace(scanner.Text())
	if version != "version 1" && version != "version 1.0" {
		return nil, fmt.Errorf("%w: unrecognised version header %q", ErrMalformed, version)
	}

	var records []Record
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return Record{}, fmt.Errorf("%w: record %q has %d fields, want 9", ErrMalformed, line, len(fields))
	}

	bucket, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: bucket %q: %v", ErrMalformed, fields[0], err)
	}
	mapWidth, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: map-W %q: %v", ErrMalformed, fields[2], err)
	}
	mapHeight, err := strconv.Atoi(fields[3])
	if err != nil {
		return Record{}, fmt.Errorf("%w: map-H %q: %v", ErrMalformed, fields[3], err)
	}
	startX, err := strconv.Atoi(fields[4])
	if err != nil {
		return Record{}, fmt.Errorf("%w: start-x %q: %v", ErrMalformed, fields[4], err)
	}
	startY, err := strconv.Atoi(fields[5])
	if err != nil {
		return Record{}, fmt.Errorf("%w: start-y %q: %v", ErrMalformed, fields[5], err)
	}
	goalX, err := strconv.Atoi(fields[6])
	if err != nil {
		return Record{}, fmt.Errorf("%w: goal-x %q: %v", ErrMalformed, fields[6], err)
	}
	goalY, err := strconv.Atoi(fields[7])
	if err != nil {
		return Record{}, fmt.Errorf("%w: goal-y %q: %v", ErrMalformed, fields[7], err)
	}
	expected, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: expected-length %q: %v", ErrMalformed, fields[8], err)
	}

	return Record{
		Bucket:         bucket,
		MapName:        fields[1],
		MapWidth:       mapWidth,
		MapHeight:      mapHeight,
		Start:          bitgrid.Cell{X: startX, Y: startY},
		Goal:           bitgrid.Cell{X: goalX, Y: goalY},
		ExpectedLength: expected,
	}, nil
}
