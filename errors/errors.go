package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrLockNockはlocknockライブラリで定義されている基底エラーです。
	ErrLockNock = errors.New("locknock")
	// ErrInvalidConfigurationは、構築時の設定値が不正な場合のエラーです。
	ErrInvalidConfiguration = fmt.Errorf("invalid configuration: %w", ErrLockNock)
	// ErrAlreadyRunningは、モニターが既に起動している状態でStartを呼び出した場合のエラーです。
	ErrAlreadyRunning = fmt.Errorf("monitor is already running: %w", ErrLockNock)
	// ErrNotRunningは、モニターが起動していない状態でStopやResetを呼び出した場合のエラーです。
	ErrNotRunning = fmt.Errorf("monitor is not running: %w", ErrLockNock)
	// ErrStopTimeoutは、モニターゴルーチンの終了待ちがタイムアウトした場合のエラーです。
	//
	// このエラーが返却された場合、モニターのゴルーチンは回収されていません。
	ErrStopTimeout = fmt.Errorf("timed out waiting for monitor to stop: %w", ErrLockNock)
	// ErrResetNotAcknowledgedは、Resetの応答確認がタイムアウトした場合のエラーです。
	//
	// メトリクスはローカルにゼロ化済みのため、回復可能なエラーとして扱えます。
	ErrResetNotAcknowledged = fmt.Errorf("reset was not acknowledged: %w", ErrLockNock)
	// ErrInternalは、通常発生しない内部エラーです。
	ErrInternal = fmt.Errorf("internal error: %w", ErrLockNock)
)

// 構築時のインターバルとタイムアウトの関係が不正な場合に送出されるエラーです。
type ConfigError struct {
	PollingInterval  time.Duration // ロック取得試行の間隔
	SamplingInterval time.Duration // サンプリングウィンドウの長さ
	Timeout          time.Duration // 停止・リセット待ちのタイムアウト
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("timeout (%v) must exceed polling_interval + sampling_interval (%v)",
		e.Timeout, e.PollingInterval+e.SamplingInterval)
}

func (e ConfigError) Is(err error) bool {
	return err == ErrInvalidConfiguration || err == ErrLockNock
}

func AsConfigError(err error) (*ConfigError, bool) {
	var res ConfigError
	ok := As(err, &res)
	return &res, ok
}

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
