package scanpath_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	scanpath.SetLogger(nil)
	l := scanpath.Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLogger_SetAndRestore(t *testing.T) {
	var buf bytes.Buffer
	scanpath.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer scanpath.SetLogger(nil)

	scanpath.Logger().Debug("hello", "points", 3)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "points=3")

	scanpath.SetLogger(nil)
	buf.Reset()
	scanpath.Logger().Error("dropped")
	assert.Empty(t, buf.String())
}
