package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douhashi/greet/internal/greeting"
	"github.com/douhashi/greet/internal/input"
	"github.com/douhashi/greet/pkg/logger"
)

func newAskCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Read a name through a fixed-capacity buffer",
		Long: `Read a name through a fixed-capacity byte buffer and print a greeting.

Names longer than capacity-1 bytes are truncated to fit; one byte is
always reserved for the terminator. The capacity comes from the config
file unless --capacity is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, capacity)
		},
	}

	cmd.Flags().IntVarP(&capacity, "capacity", "n", 0, "buffer capacity in bytes (0 uses the configured default)")

	return cmd
}

func runAsk(cmd *cobra.Command, capacity int) error {
	log := logger.GetLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if capacity == 0 {
		capacity = cfg.Input.Capacity
	}
	if capacity < 1 {
		return input.NewCapacityError(capacity)
	}

	log.Debug("Reading into fixed buffer", "capacity", capacity)

	buf := make([]byte, capacity)
	r := input.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	n, err := r.FillName(buf, cfg.Prompt.Buffered)
	if err != nil {
		log.Error("Failed to read name", "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading input: %v\n", err)
		return err
	}

	name := string(buf[:n])
	fmt.Fprintln(cmd.OutOrStdout(), greeting.BufferedMessage(name))
	fmt.Fprintf(cmd.OutOrStdout(), "Stored in buffer: %s (%d of %d bytes used)\n", name, n+1, capacity)
	return nil
}
