package input

import (
	"fmt"

	"github.com/douhashi/greet/internal/greeting"
)

// FillName prompts for a name and copies its trimmed bytes into dst,
// followed by a single NUL terminator. At most len(dst)-1 name bytes are
// copied; longer names are truncated, not rejected. It returns the number
// of name bytes copied, terminator excluded.
//
// dst is caller-owned; this function never writes past len(dst) and never
// reallocates it. The source bytes come from the input stream, so source
// and destination cannot alias. A zero-length dst is rejected before any
// write, since the terminator alone needs one byte.
//
// On a read failure dst[0] is set to NUL, the rest of dst is left
// untouched, and the error is returned.
func (r *Reader) FillName(dst []byte, prompt string) (int, error) {
	if len(dst) == 0 {
		return 0, NewCapacityError(len(dst))
	}

	name, err := r.AskName(prompt)
	if err != nil {
		dst[0] = 0
		return 0, err
	}

	n := len(name)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst[:n], name[:n])
	dst[n] = 0
	return n, nil
}

// AskNameBuffer is the legacy bounded-buffer contract: it fills dst like
// FillName and prints a greeting, but reports no status. A read failure
// leaves an empty string in dst and a diagnostic on the error stream.
// Prefer FillName or AskName, which surface the failure explicitly.
func (r *Reader) AskNameBuffer(dst []byte, prompt string) {
	n, err := r.FillName(dst, prompt)
	if err != nil {
		fmt.Fprintf(r.errOut, "Error reading input: %v\n", err)
		return
	}

	fmt.Fprintln(r.out, greeting.BufferedMessage(string(dst[:n])))
}
