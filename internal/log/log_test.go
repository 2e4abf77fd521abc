package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel(LevelInfo)

	cases := map[string]string{
		LevelDebug: "debug",
		LevelWarn:  "warn",
		LevelError: "error",
		"verbose":  "info",
		"":         "info",
	}
	for in, want := range cases {
		SetLevel(in)
		assert.Equal(t, want, Level(), "level %q", in)
	}
}
