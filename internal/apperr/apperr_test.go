package apperr

import (
	"errors"
	"strings"
	"testing"
)

func TestKindsAreDistinguishable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", Validation("score %d out of range", 7), ErrValidation},
		{"not found", NotFound("cadet with CAP ID %d", 12345), ErrNotFound},
		{"data integrity", DataIntegrity("duplicate rank order %d", 3), ErrDataIntegrity},
		{"storage", Storage(errors.New("disk I/O error"), "upserting inspection"), ErrStorage},
	}

	kinds := []error{ErrValidation, ErrNotFound, ErrDataIntegrity, ErrStorage}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("expected %v to match kind %v", tt.err, tt.kind)
			}
			for _, other := range kinds {
				if other != tt.kind && errors.Is(tt.err, other) {
					t.Errorf("error %v unexpectedly matches kind %v", tt.err, other)
				}
			}
		})
	}
}

func TestMessagesCarryDetail(t *testing.T) {
	err := NotFound("cadet with CAP ID %d", 54321)
	if !strings.Contains(err.Error(), "54321") {
		t.Errorf("expected message to name the missing id, got %q", err.Error())
	}
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := Storage(cause, "awarding rank")
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to stay reachable through errors.Is")
	}
}
