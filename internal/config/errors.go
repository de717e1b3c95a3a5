package config

import (
	"fmt"

	"github.com/douhashi/greet/pkg/errors"
)

// NewConfigLoadError reports a config file that could not be loaded.
func NewConfigLoadError(filePath, reason string) error {
	msg := fmt.Sprintf("failed to load config from %s: %s", filePath, reason)
	var err error = errors.NewValidationError(msg)
	err = errors.WithContext(err, "file", filePath)
	err = errors.WithContext(err, "reason", reason)
	return err
}
