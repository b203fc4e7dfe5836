package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("BELT_DEBUG", "")
	assert.False(t, DebugEnabled(), "empty BELT_DEBUG should disable debug")

	t.Setenv("BELT_DEBUG", "1")
	assert.True(t, DebugEnabled())

	t.Setenv("BELT_DEBUG", "true")
	assert.True(t, DebugEnabled())
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	previous := Default()
	t.Cleanup(func() { SetDefault(previous) })

	SetDefault(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	t.Setenv("BELT_DEBUG", "")
	Debugf("hidden %s", "message")
	assert.Empty(t, buf.String())

	t.Setenv("BELT_DEBUG", "1")
	Debugf("visible %s", "message")
	assert.Contains(t, buf.String(), "visible message")
}

func TestDebugln(t *testing.T) {
	var buf bytes.Buffer
	previous := Default()
	t.Cleanup(func() { SetDefault(previous) })

	SetDefault(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	t.Setenv("BELT_DEBUG", "1")
	Debugln("plan", "reloaded")
	assert.Contains(t, buf.String(), "plan")
}
