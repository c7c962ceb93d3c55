package log

import (
	"context"

	uuid "github.com/google/uuid"
)

// Loggerは、locknock-go内で使用するロガーインターフェースです。
type Logger interface {
	Infof(context.Context, string, ...interface{})
	Warnf(context.Context, string, ...interface{})
	Errorf(context.Context, string, ...interface{})
	Debugf(context.Context, string, ...interface{})
}

var trackMonitorIDKey = "trackMonitorIDKey"

// WithTrackMonitorIDは、新たにモニターIDを採番しコンテキストにセットします。
//
// モニターIDはモニターが起動されたタイミングでセットします。
// ここで設定されたモニターIDは常にログ出力します。
func WithTrackMonitorID(ctx context.Context) context.Context {
	return context.WithValue(ctx, &trackMonitorIDKey, genTrackID())
}

// TrackMonitorIDは、コンテキストにセットされたモニターIDを取得します。
func TrackMonitorID(ctx context.Context) string {
	v, ok := ctx.Value(&trackMonitorIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

func genTrackID() string {
	return uuid.NewString()
}
