package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/douhashi/greet/internal/greeting"
	"github.com/douhashi/greet/internal/input"
	"github.com/douhashi/greet/pkg/logger"
)

// runGreet is the root command behavior: prompt, read one line, greet.
// A read failure is written to stderr and returned, so main can map it
// to a non-zero exit status.
func runGreet(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	r := input.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	name, err := r.AskName(cfg.Prompt.Console)
	if err != nil {
		log.Error("Failed to read name", "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Error reading input: %v\n", err)
		return err
	}

	log.Debug("Read name from input", "length", len(name))
	fmt.Fprintln(cmd.OutOrStdout(), greeting.Message(name))
	return nil
}
