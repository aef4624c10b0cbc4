package main

import (
	"bytes"
	"testing"

	msgevents "github.com/glimte/msgevents-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MSGEVENTS_LOG_FORMAT", "text")
	t.Setenv("MSGEVENTS_LOG_LEVEL", "info")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, msgevents.Version+"\n", out)
}

func TestEmitCommand(t *testing.T) {
	t.Run("logs the payload", func(t *testing.T) {
		out, err := execute(t, "emit", "orders", "created")

		require.NoError(t, err)
		assert.Contains(t, out, "channel=orders")
		assert.Contains(t, out, "payload=created")
	})

	t.Run("wraps arguments with a format", func(t *testing.T) {
		out, err := execute(t, "emit", "greetings", "hello", "world", "--wrap", "text")

		require.NoError(t, err)
		assert.Contains(t, out, "map[text:hello world]")
	})

	t.Run("rejects reserved channel ids", func(t *testing.T) {
		out, err := execute(t, "emit", "format", "x")

		assert.ErrorContains(t, err, msgevents.ErrorInternalID)
		assert.Contains(t, out, "channel error")
	})

	t.Run("rejects the error channel", func(t *testing.T) {
		out, err := execute(t, "emit", "error", "x")

		assert.ErrorContains(t, err, `cannot emit on the "error" channel`)
		assert.NotContains(t, out, "level=INFO")
	})

	t.Run("requires a channel", func(t *testing.T) {
		_, err := execute(t, "emit")

		assert.Error(t, err)
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid ids", func(t *testing.T) {
		out, err := execute(t, "check", "info", "orders")

		require.NoError(t, err)
		assert.Contains(t, out, `valid: "info"`)
		assert.Contains(t, out, `valid: "orders"`)
	})

	t.Run("invalid ids", func(t *testing.T) {
		out, err := execute(t, "check", "on", "", "orders")

		assert.ErrorContains(t, err, "2 of 3 channel ids are invalid")
		assert.Contains(t, out, "invalid: "+msgevents.ErrorInternalID)
		assert.Contains(t, out, "invalid: "+msgevents.ErrorInvalidIDLength)
		assert.Contains(t, out, `valid: "orders"`)
	})
}
