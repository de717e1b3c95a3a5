package greeting

import "fmt"

// Message returns the console greeting for a name
func Message(name string) string {
	if name == "" {
		name = "Guest"
	}
	return fmt.Sprintf("Hello %s from greet!", name)
}

// BufferedMessage returns the greeting printed by the buffered readers
func BufferedMessage(name string) string {
	if name == "" {
		name = "Guest"
	}
	return fmt.Sprintf("Hello from the buffer, %s!", name)
}
