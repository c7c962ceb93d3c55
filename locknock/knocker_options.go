package locknock

import (
	"time"

	"github.com/locknock/locknock-go/log"
)

var (
	defaultPollingInterval  = 1000 * time.Microsecond
	defaultSamplingFactor   = 10
	defaultTimeoutSlack     = time.Second
	defaultStopPollInterval = 100 * time.Millisecond
)

// KnockerConfigは、モニターの設定です。
type KnockerConfig struct {
	// 監視対象ロックのプローブ
	Prober Prober

	// ウィンドウ内でロック取得を試行する間隔
	//
	// デフォルトは1000マイクロ秒です。
	PollingInterval *time.Duration

	// 1サンプリングウィンドウの長さ
	//
	// デフォルトはPollingIntervalの10倍です。
	SamplingInterval *time.Duration

	// StopおよびResetの応答待ちのタイムアウト
	//
	// PollingInterval + SamplingInterval より大きい値である必要があります。
	// デフォルトはPollingInterval + SamplingInterval + 1秒です。
	Timeout *time.Duration

	// ロガー
	Logger log.Logger
}

var defaultKnockerConfig = KnockerConfig{
	Prober:           nil,
	PollingInterval:  nil,
	SamplingInterval: nil,
	Timeout:          nil,
	Logger:           log.NewNop(),
}

type (
	KnockerOption func(conf *KnockerConfig)
)

// WithPollingIntervalは、ロック取得を試行する間隔を設定します。
func WithPollingInterval(interval time.Duration) KnockerOption {
	return func(conf *KnockerConfig) {
		conf.PollingInterval = &interval
	}
}

// WithSamplingIntervalは、1サンプリングウィンドウの長さを設定します。
func WithSamplingInterval(interval time.Duration) KnockerOption {
	return func(conf *KnockerConfig) {
		conf.SamplingInterval = &interval
	}
}

// WithTimeoutは、StopおよびResetの応答待ちのタイムアウトを設定します。
func WithTimeout(timeout time.Duration) KnockerOption {
	return func(conf *KnockerConfig) {
		conf.Timeout = &timeout
	}
}

// WithLoggerは、ロガーを設定します。
func WithLogger(logger log.Logger) KnockerOption {
	return func(conf *KnockerConfig) {
		conf.Logger = logger
	}
}
