package document

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 64 * 1024 * 1024
)

// ErrInvalidUTF8 reports content that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Load reads the file at path and returns its lines with terminators stripped.
func Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open file: %s is a directory", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	lines, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return lines, nil
}

// Read splits r into lines. "\n", "\r\n" and a lone "\r" all end a line, and a
// terminator at end of input does not produce a trailing empty line.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)
	scanner.Split(scanLines)

	lines := []string{}
	for scanner.Scan() {
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			return nil, fmt.Errorf("line %d: %w", len(lines)+1, ErrInvalidUTF8)
		}
		lines = append(lines, string(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLines is bufio.ScanLines with universal newline handling.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A '\r' at the end of the buffer may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
