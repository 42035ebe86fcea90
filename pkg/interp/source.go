package interp

import (
	"bufio"
	"io"
	"strings"
)

// LineReader is the input capability the interpreter loop reads from: one
// line of text per call, io.EOF once the source is exhausted. Implement it
// to feed the loop from anything that is not a plain io.Reader, such as an
// interactive readline instance.
type LineReader interface {
	// ReadLine returns the next line without its trailing line ending.
	// It returns io.EOF at end-of-input and any other error verbatim.
	ReadLine() (string, error)
}

type readerSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps an io.Reader in a buffered LineReader. A final
// line without a trailing newline is still delivered as a line; io.EOF is
// reported on the call after it.
func NewReaderSource(r io.Reader) LineReader {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
