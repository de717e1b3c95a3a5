package config

import "fmt"

// GenerateTemplate generates the default configuration template for greet.
func GenerateTemplate() string {
	return fmt.Sprintf(`# greet configuration

# Prompt text written before each read. The text has no trailing
# newline, so it stays on the same line as the typed name.
prompt:
  console: "%s"
  buffered: "%s"

# Buffer settings for the bounded reader (greet ask).
input:
  # Capacity in bytes, NUL terminator included. Names longer than
  # capacity-1 bytes are truncated. Must be at least 1.
  capacity: %d

# Logging settings
log:
  level: info   # debug, info, warn, error
  format: text  # text or json
`, DefaultConsolePrompt, DefaultBufferedPrompt, DefaultCapacity)
}
