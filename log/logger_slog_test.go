package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	. "github.com/locknock/locknock-go/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_slogLogger(t *testing.T) {
	var buf bytes.Buffer
	testee := NewSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := WithTrackMonitorID(context.Background())

	testee.Infof(ctx, "message %s", "info")
	testee.Warnf(ctx, "message %s", "warn")
	testee.Errorf(ctx, "message %s", "error")
	testee.Debugf(ctx, "message %s", "debug")

	got := buf.String()
	require.NotEmpty(t, got)
	assert.Contains(t, got, "message info")
	assert.Contains(t, got, "message warn")
	assert.Contains(t, got, "message error")
	assert.Contains(t, got, "message debug")
	assert.Contains(t, got, "track-monitor-id")
}
