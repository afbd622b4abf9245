package logger

import (
	"context"
	"testing"
)

func TestSanitizeLimit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "plain", input: "hello", max: 10, want: "hello"},
		{name: "truncated", input: "hello world", max: 5, want: "hello"},
		{name: "control chars removed", input: "a\x00b\x1fc", max: 10, want: "abc"},
		{name: "tab and newline kept", input: "a\tb\nc", max: 10, want: "a\tb\nc"},
		{name: "zero max", input: "hello", max: 0, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeLimit(tc.input, tc.max); got != tc.want {
				t.Fatalf("SanitizeLimit(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
			}
		})
	}
}

func TestUserIDContextRoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "42")
	if got := UserIDFrom(ctx); got != "42" {
		t.Fatalf("UserIDFrom = %q, want %q", got, "42")
	}
	if got := UserIDFrom(context.Background()); got != "" {
		t.Fatalf("UserIDFrom on empty context = %q, want empty", got)
	}
}
