package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douhashi/greet/internal/banner"
	"github.com/douhashi/greet/internal/greeting"
	"github.com/douhashi/greet/internal/input"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every input variant in sequence",
		Long: `Walk through every input variant in sequence: the legacy bounded
buffer, the bounded buffer with explicit status, and the owned string.
Each variant prompts and reads one line on its own.`,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := input.New(cmd.InOrStdin(), out, cmd.ErrOrStderr())

	banner.Print(out)

	// 1. Legacy bounded buffer: no status, failure becomes an empty
	// string plus a stderr diagnostic.
	fmt.Fprintln(out, "1. Bounded buffer (legacy, no status):")
	legacy := make([]byte, cfg.Input.Capacity)
	r.AskNameBuffer(legacy, cfg.Prompt.Buffered)
	fmt.Fprintf(out, "Stored in buffer: %s\n\n", cString(legacy))

	// 2. Bounded buffer with explicit status.
	fmt.Fprintln(out, "2. Bounded buffer (explicit status):")
	buf := make([]byte, cfg.Input.Capacity)
	n, err := r.FillName(buf, cfg.Prompt.Buffered)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading input: %v\n", err)
		return err
	}
	fmt.Fprintln(out, greeting.BufferedMessage(string(buf[:n])))
	fmt.Fprintf(out, "Stored in buffer: %s (%d of %d bytes used)\n\n", string(buf[:n]), n+1, cfg.Input.Capacity)

	// 3. Owned string, no capacity at all.
	fmt.Fprintln(out, "3. Owned string:")
	name, err := r.AskName(cfg.Prompt.Console)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading input: %v\n", err)
		return err
	}
	fmt.Fprintln(out, greeting.Message(name))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== All variants completed ===")
	return nil
}

// cString returns the bytes of buf up to its NUL terminator.
func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
