package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "under limit", input: "short", limit: 10, want: "short"},
		{name: "exact limit", input: "12345", limit: 5, want: "12345"},
		{name: "truncated", input: "123456789", limit: 5, want: "12345..."},
		{name: "zero limit", input: "anything", limit: 0, want: ""},
		{name: "trims whitespace", input: "  padded  ", limit: 10, want: "padded"},
		{name: "multibyte safe", input: "привет мир", limit: 6, want: "привет..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.input, tc.limit); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			logger, err := New(json, debug)
			if err != nil {
				t.Fatalf("unexpected error (json=%v debug=%v): %v", json, debug, err)
			}
			if logger == nil {
				t.Fatalf("expected logger instance")
			}
		}
	}
}
