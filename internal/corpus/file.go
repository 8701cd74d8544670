package corpus

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// File is a loaded source text file. The raw content is kept verbatim so the
// tokenizer's display stream preserves the original surface forms.
type File struct {
	Path string

	raw string
	sum string
}

// Load reads a text file and computes its content checksum.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	sum := sha256.Sum256(data)
	return &File{
		Path: path,
		raw:  string(data),
		sum:  hex.EncodeToString(sum[:]),
	}, nil
}

// Raw returns the file content exactly as stored on disk.
func (f *File) Raw() string {
	return f.raw
}

// Lines returns the file content split on newlines, without a trailing
// empty line. Carriage returns are trimmed.
func (f *File) Lines() []string {
	lines := strings.Split(f.raw, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Checksum returns the hex-encoded SHA-256 of the file content.
func (f *File) Checksum() string {
	return f.sum
}
