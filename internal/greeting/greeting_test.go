package greeting

import (
	"testing"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Greeting with name",
			input:    "Alice",
			expected: "Hello Alice from greet!",
		},
		{
			name:     "Greeting with empty string",
			input:    "",
			expected: "Hello Guest from greet!",
		},
		{
			name:     "Greeting with multibyte characters",
			input:    "世界",
			expected: "Hello 世界 from greet!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Message(tt.input)
			if result != tt.expected {
				t.Errorf("Message(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBufferedMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Buffered greeting with name",
			input:    "Bob",
			expected: "Hello from the buffer, Bob!",
		},
		{
			name:     "Buffered greeting with empty string",
			input:    "",
			expected: "Hello from the buffer, Guest!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BufferedMessage(tt.input)
			if result != tt.expected {
				t.Errorf("BufferedMessage(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
