package life

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePattern reads a Life 1.06 pattern: lines starting with '#' are
// comments, every other line holds two whitespace-separated signed integers
// "dx dy" relative to an anchor. Any malformed line fails the whole parse so
// a pattern is never applied partially.
func ParsePattern(r io.Reader) ([]Cell, error) {
	var offsets []Cell
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("[ParsePattern] line %d: expected two integers, got %q", lineNo, line)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "[ParsePattern] line %d: bad x coordinate", lineNo)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "[ParsePattern] line %d: bad y coordinate", lineNo)
		}
		offsets = append(offsets, Cell{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] read failed")
	}
	return offsets, nil
}

// LoadPatternFile parses the Life 1.06 file at path. A missing file keeps
// fs.ErrNotExist in the chain so callers can distinguish it from a parse
// failure.
func LoadPatternFile(path string) ([]Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatternFile] failed to open pattern: %v", path)
	}
	defer f.Close()

	offsets, err := ParsePattern(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatternFile] %v", path)
	}
	return offsets, nil
}
