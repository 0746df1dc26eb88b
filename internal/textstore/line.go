package textstore

import "github.com/dged-editor/dged/internal/codec"

// line owns one line's bytes. No line ever contains a newline byte.
type line struct {
	bytes   []byte
	changed bool
}

func newLine(b []byte) *line {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &line{bytes: buf}
}

func (l *line) nchars() int {
	return codec.TotalChars(l.bytes)
}

// Chunk is a borrowed or owned view into store content. Allocated
// distinguishes a freshly-owned byte slice (the caller may keep it) from a
// borrowed pointer into store-owned storage (valid only until the next
// mutation).
type Chunk struct {
	Bytes     []byte
	Line      int
	Allocated bool
}

// String returns the chunk's text as a string.
func (c Chunk) String() string {
	return string(c.Bytes)
}
