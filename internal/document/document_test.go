package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{}},
		{name: "single line no terminator", input: "only", expected: []string{"only"}},
		{name: "trailing newline", input: "a\nb\n", expected: []string{"a", "b"}},
		{name: "no trailing newline", input: "a\nb", expected: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "lone cr", input: "a\rb\r", expected: []string{"a", "b"}},
		{name: "mixed", input: "a\r\nb\rc\nd", expected: []string{"a", "b", "c", "d"}},
		{name: "blank lines kept", input: "a\n\n\nb\n", expected: []string{"a", "", "", "b"}},
		{name: "only newline", input: "\n", expected: []string{""}},
		{name: "json payload", input: "INFO {\"a\":1}\n", expected: []string{"INFO {\"a\":1}"}},
		{name: "utf8", input: "café\n☕\n", expected: []string{"café", "☕"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRead_CRLFSplitAcrossBuffer(t *testing.T) {
	// One byte per read so "\r" and "\n" arrive separately.
	got, err := Read(iotest.OneByteReader(strings.NewReader("a\r\nb\r\n")))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %q, want %q", got, want)
	}
}

func TestRead_InvalidUTF8(t *testing.T) {
	_, err := Read(strings.NewReader("ok\n\xff\xfe\n"))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Read() error = %v, want ErrInvalidUTF8", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("Read() error = %q, want it to name line 2", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "app.log")

	var content strings.Builder
	var expected []string
	for i := 1; i <= 100; i++ {
		line := fmt.Sprintf("line %d {\"n\":%d}", i, i)
		content.WriteString(line + "\n")
		expected = append(expected, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("Load() returned %d lines, want %d", len(got), len(expected))
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(filepath.Join(tmpDir, "missing.log")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	if _, err := Load(tmpDir); err == nil || !strings.Contains(err.Error(), "directory") {
		t.Fatalf("Load(dir) error = %v, want directory error", err)
	}

	bad := filepath.Join(tmpDir, "bad.log")
	if err := os.WriteFile(bad, []byte{0xc3, 0x28}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Load(bad) error = %v, want ErrInvalidUTF8", err)
	}
}
