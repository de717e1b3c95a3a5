package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		version string
		wantErr bool
	}{
		{
			name:    "Execute with version",
			args:    []string{"version"},
			version: "1.0.0",
			wantErr: false,
		},
		{
			name:    "Execute with help",
			args:    []string{"--help"},
			version: "1.0.0",
			wantErr: false,
		},
		{
			name:    "Execute with unknown command",
			args:    []string{"unknown"},
			version: "1.0.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			Version = tt.version

			err := Execute(tt.version, "none", "unknown")
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	Version = "1.0.0-test"
	Commit = "abc1234"
	Date = "2026-01-01"

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "1.0.0-test") {
		t.Errorf("Version command output = %v, want to contain version", output)
	}
	if !strings.Contains(output, "abc1234") {
		t.Errorf("Version command output = %v, want to contain commit", output)
	}
}

func TestRootCmdDescription(t *testing.T) {
	if rootCmd.Short != "Interactive console greeter" {
		t.Errorf("Short description incorrect: got %v", rootCmd.Short)
	}
}

func TestConfigFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Errorf("config flag not registered")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Errorf("verbose flag not registered")
	}
}
