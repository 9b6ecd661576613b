package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" info ", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		if got := level(tc.raw); got != tc.want {
			t.Errorf("level(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
