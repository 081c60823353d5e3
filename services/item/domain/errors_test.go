package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrItemNotFound, "item not found"},
		{ErrInvalidItem, "invalid item"},
		{ErrInvalidFilter, "invalid filter"},
		{ErrStorageUnavailable, "item storage unavailable"},
		{ErrCorruptCollection, "item collection corrupt"},
		{ErrInvalidImage, "invalid image"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected message: got %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrItemNotFound, ErrInvalidItem, ErrInvalidFilter, ErrStorageUnavailable, ErrCorruptCollection, ErrInvalidImage}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get item: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrStorageUnavailable, errors.New("connection refused"))
	if !errors.Is(wrapped2, ErrStorageUnavailable) {
		t.Fatal("errors.Is must match double-wrapped ErrStorageUnavailable")
	}
}
