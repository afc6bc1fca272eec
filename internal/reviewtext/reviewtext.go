// Package reviewtext reads review text from files, standard input, or
// arguments and records where it came from.
package reviewtext

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxBytes bounds how much review text is read from a file or stream.
const maxBytes = 1 << 20

// Text is a loaded review with its source and content hash.
type Text struct {
	Source string
	Raw    string
	Hash   string
}

// FromArgs joins command-line arguments with single spaces.
func FromArgs(args []string) *Text {
	return newText("args", strings.Join(args, " "))
}

// Load reads a review file.
func Load(path string) (*Text, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reviewtext.Load: %w", err)
	}
	defer f.Close()
	t, err := Read(f, path)
	if err != nil {
		return nil, fmt.Errorf("reviewtext.Load: %w", err)
	}
	return t, nil
}

// Read consumes r up to the size limit. A longer input is an error rather
// than a silently truncated review.
func Read(r io.Reader, source string) (*Text, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reviewtext.Read: %w", err)
	}
	if len(data) > maxBytes {
		return nil, fmt.Errorf("reviewtext.Read: %s exceeds %d bytes", source, maxBytes)
	}
	return newText(source, string(data)), nil
}

// Chars returns the number of characters in the review.
func (t *Text) Chars() int {
	return len([]rune(t.Raw))
}

func newText(source, raw string) *Text {
	h := sha256.Sum256([]byte(raw))
	return &Text{
		Source: source,
		Raw:    raw,
		Hash:   fmt.Sprintf("sha256:%x", h),
	}
}
