package source

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// maxLineSize bounds a single line. Mapping files carry long glosses.
const maxLineSize = 1 << 20

// ErrStop may be returned by an EachLine callback to end the scan early
// without an error.
var ErrStop = errors.New("stop scanning")

// ErrOpen marks a resource file that resolved but could not be opened.
var ErrOpen = errors.New("open resource")

// Open opens path for reading. Failures wrap ErrOpen.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return f, nil
}

// EachLine calls fn for every line of the file at path with its 1-based line
// number. Trailing carriage returns are removed.
func EachLine(path string, fn func(n int, line string) error) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if l := len(line); l > 0 && line[l-1] == '\r' {
			line = line[:l-1]
		}
		if err := fn(n, line); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s at line %d: %w", path, n+1, err)
	}
	return nil
}
