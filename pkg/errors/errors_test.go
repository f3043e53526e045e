/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidRequest, "vehicle file is empty"),
			want: "[INVALID_REQUEST] vehicle file is empty",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeNotFound, "failed to open vehicle", stderrors.New("no such file")),
			want: "[NOT_FOUND] failed to open vehicle: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := WrapWithContext(ErrCodeInternal, "integrity violation", cause, map[string]any{"index": 2})

	if !stderrors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
	if err.Context["index"].(int) != 2 {
		t.Fatalf("expected context index=2, got %#v", err.Context["index"])
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("running diagnostic: %w", New(ErrCodeInternal, "part has no type"))

	code, ok := CodeOf(wrapped)
	if !ok {
		t.Fatal("expected structured error in chain")
	}
	if code != ErrCodeInternal {
		t.Fatalf("expected code %s, got %s", ErrCodeInternal, code)
	}

	if _, ok := CodeOf(stderrors.New("plain")); ok {
		t.Fatal("expected no code for plain error")
	}

	if !HasCode(wrapped, ErrCodeInternal) {
		t.Fatal("expected HasCode to match")
	}
	if HasCode(wrapped, ErrCodeTimeout) {
		t.Fatal("expected HasCode not to match a different code")
	}
}
