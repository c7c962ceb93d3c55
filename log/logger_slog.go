package log

import (
	"context"
	"fmt"
	"log/slog"
)

type slogLogger struct {
	l *slog.Logger
}

func (l *slogLogger) Infof(ctx context.Context, format string, args ...any) {
	l.with(ctx).InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *slogLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.with(ctx).WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *slogLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.with(ctx).ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func (l *slogLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.with(ctx).DebugContext(ctx, fmt.Sprintf(format, args...))
}

func (l *slogLogger) with(ctx context.Context) *slog.Logger {
	mID := TrackMonitorID(ctx)
	if mID == "" {
		return l.l
	}
	return l.l.With(slog.String("track-monitor-id", mID))
}

// NewSlogは、`log/slog` のロガーを使用するロガーを返却します。
//
// ハンドラーを差し替えることで任意の構造化ログ出力に対応できます。
func NewSlog(l *slog.Logger) Logger {
	return &slogLogger{
		l: l,
	}
}
