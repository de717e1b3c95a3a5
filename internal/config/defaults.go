package config

const (
	DefaultConsolePrompt  = "Enter your name: "
	DefaultBufferedPrompt = "Enter your name (buffered version): "
	DefaultCapacity       = 100
)
