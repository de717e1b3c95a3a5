package errors

import (
	"errors"
	"testing"
)

func TestBaseError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
		wantMsg  string
	}{
		{
			name:     "validation error",
			err:      NewValidationError("invalid input"),
			wantCode: CodeValidation,
			wantMsg:  "validation error: invalid input",
		},
		{
			name:     "internal error",
			err:      NewInternalError("system error"),
			wantCode: CodeInternal,
			wantMsg:  "internal error: system error",
		},
		{
			name:     "external error",
			err:      NewExternalError("stream closed"),
			wantCode: CodeExternal,
			wantMsg:  "external error: stream closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", got, tt.wantMsg)
			}

			var baseErr *BaseError
			if !errors.As(tt.err, &baseErr) {
				t.Fatalf("expected BaseError type")
			}

			if baseErr.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", baseErr.Code, tt.wantCode)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("original error")

	tests := []struct {
		name         string
		wrapFunc     func() error
		wantMsg      string
		wantOriginal bool
	}{
		{
			name: "wrap with context",
			wrapFunc: func() error {
				return Wrap(originalErr, "failed to process")
			},
			wantMsg:      "failed to process: original error",
			wantOriginal: true,
		},
		{
			name: "wrap validation error",
			wrapFunc: func() error {
				return WrapValidation(originalErr, "validation failed")
			},
			wantMsg:      "validation error: validation failed: original error",
			wantOriginal: true,
		},
		{
			name: "wrap internal error",
			wrapFunc: func() error {
				return WrapInternal(originalErr, "internal failure")
			},
			wantMsg:      "internal error: internal failure: original error",
			wantOriginal: true,
		},
		{
			name: "wrap external error",
			wrapFunc: func() error {
				return WrapExternal(originalErr, "read failed")
			},
			wantMsg:      "external error: read failed: original error",
			wantOriginal: true,
		},
		{
			name: "wrap nil error",
			wrapFunc: func() error {
				return Wrap(nil, "should be nil")
			},
			wantMsg:      "",
			wantOriginal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wrapFunc()

			if !tt.wantOriginal {
				if err != nil {
					t.Errorf("expected nil error, got %v", err)
				}
				return
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			if !errors.Is(err, originalErr) {
				t.Errorf("wrapped error should match original with errors.Is")
			}
		})
	}
}

func TestWrapPreservesCode(t *testing.T) {
	base := NewExternalError("read failed")
	wrapped := Wrap(base, "asking for name")

	if !IsExternalError(wrapped) {
		t.Errorf("Wrap should preserve the code of a BaseError cause")
	}
	if !errors.Is(wrapped, base) {
		t.Errorf("wrapped error should match cause with errors.Is")
	}
}

func TestWithContext(t *testing.T) {
	t.Run("adds context to BaseError", func(t *testing.T) {
		err := NewValidationError("capacity must be positive")
		err2 := WithContext(err, "capacity", 0)

		var baseErr *BaseError
		if !errors.As(err2, &baseErr) {
			t.Fatalf("expected BaseError type")
		}
		if baseErr.Context["capacity"] != 0 {
			t.Errorf("Context[capacity] = %v, want 0", baseErr.Context["capacity"])
		}
	})

	t.Run("wraps foreign error", func(t *testing.T) {
		err := WithContext(errors.New("plain"), "key", "value")

		var baseErr *BaseError
		if !errors.As(err, &baseErr) {
			t.Fatalf("expected BaseError type")
		}
		if baseErr.Code != CodeUnknown {
			t.Errorf("Code = %v, want %v", baseErr.Code, CodeUnknown)
		}
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		if err := WithContext(nil, "key", "value"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

func TestCodePredicates(t *testing.T) {
	if !IsValidationError(NewValidationError("x")) {
		t.Errorf("IsValidationError should be true for validation errors")
	}
	if !IsInternalError(NewInternalError("x")) {
		t.Errorf("IsInternalError should be true for internal errors")
	}
	if !IsExternalError(NewExternalError("x")) {
		t.Errorf("IsExternalError should be true for external errors")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Errorf("GetCode should return CodeUnknown for foreign errors")
	}
	if GetCode(nil) != CodeUnknown {
		t.Errorf("GetCode should return CodeUnknown for nil")
	}
}
