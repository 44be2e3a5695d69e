package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bitpath/bitgrid"
)

// obstacleChars are the characters the format treats as blocked; any other
// character (including the common '.' for open ground) is free.
const obstacleChars = "@OT"

// Parse reads a map file from r and returns the grid it describes.
// Returns ErrMalformed, wrapped with the offending detail, if the header
// sequence or row dimensions do not match the format.
func Parse(r io.Reader) (*bitgrid.Grid, error) {
	scanner := bufio.NewScanner(r)

	if err := expectLine(scanner, "type octile"); err != nil {
		return nil, err
	}
	height, err := expectKeyValue(scanner, "height")
	if err != nil {
		return nil, err
	}
	width, err := expectKeyValue(scanner, "width")
	if err != nil {
		return nil, err
	}
	if err := expectLine(scanner, "map"); err != nil {
		return nil, err
	}

	g, err := bitgrid.New(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d map rows, got %d", ErrMalformed, height, y)
		}
		row := scanner.Text()
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformed, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			if strings.ContainsRune(obstacleChars, rune(row[x])) {
				g.Set(x, y, true)
			}
		}
	}
	return g, scanner.Err()
}

func expectLine(scanner *bufio.Scanner, want string) error {
	if !scanner.Scan() {
		return fmt.Errorf("%w: expected line %q, got EOF", ErrMalformed, want)
	}
	if got := strings.TrimSpace(scanner.Text()); got != want {
		return fmt.Errorf("%w: expected line %q, got %q", ErrMalformed, want, got)
	}
	return nil
}

func expectKeyValue(scanner *bufio.Scanner, key string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%w: expected %q line, got EOF", ErrMalformed, key)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 || fields[0] != key {
		return 0, fmt.Errorf("%w: expected %q line, got %q", ErrMalformed, key, scanner.Text())
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %s value %q is not an integer", ErrMalformed, key, fields[1])
	}
	return n, nil
}
