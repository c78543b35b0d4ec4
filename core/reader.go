package core

import (
	"io"
)

// LineReader reads standard input one line at a time. It never reads past
// the end of the current line so anything after it is left for the next
// child process that inherits the stream.
type LineReader struct {
	r    io.Reader
	buf  []byte
	char [1]byte
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r, buf: make([]byte, 0, 256)}
}

// ReadLine returns the next line including its terminator. A last line with
// no terminator is returned as-is, the following call returns io.EOF.
func (lr *LineReader) ReadLine() (string, error) {
	lr.buf = lr.buf[:0]

	for {
		_, err := io.ReadFull(lr.r, lr.char[:])
		switch {
		case err == io.EOF && len(lr.buf) > 0:
			return string(lr.buf), nil
		case err != nil:
			return "", err
		}

		lr.buf = append(lr.buf, lr.char[0])
		if lr.char[0] == '\n' {
			return string(lr.buf), nil
		}
	}
}
