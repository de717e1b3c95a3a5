// Package input implements the prompt/read/trim sequence shared by all
// greeting variants.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Reader asks for a name on an input stream. It performs exactly one
// blocking read per call and keeps no state between calls beyond its
// read-ahead buffer. Concurrent calls against the same underlying stream
// are not synchronized here; that is the caller's responsibility.
type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// New creates a Reader bound to the given streams.
func New(in io.Reader, out, errOut io.Writer) *Reader {
	return &Reader{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

type flusher interface {
	Flush() error
}

// AskName writes the prompt, reads one line and returns it with leading
// and trailing whitespace (including the line terminator) removed.
// A read failure is returned as-is; there is no retry and no timeout.
func (r *Reader) AskName(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", NewPromptError(err)
	}

	// The prompt has no trailing newline; flush so it is visible before
	// blocking on the read.
	if f, ok := r.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return "", NewPromptError(err)
		}
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		// A final line without a terminator still counts as input.
		if err == io.EOF && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", NewReadError(err)
	}

	return strings.TrimSpace(line), nil
}
