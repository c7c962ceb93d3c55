package locknock

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/locknock/locknock-go/errors"
	"github.com/locknock/locknock-go/internal/ch"
	"github.com/locknock/locknock-go/internal/poll"
	"github.com/locknock/locknock-go/log"
)

// Newは、監視対象ロックの競合モニターを生成します。
//
// proberは監視対象ロックを取得・解放するプローブを指定します。
func New(prober Prober, opts ...KnockerOption) (*Knocker, error) {
	conf := defaultKnockerConfig
	for _, o := range opts {
		o(&conf)
	}
	conf.Prober = prober

	return NewWithConfig(&conf)
}

// NewWithConfigは、Configを指定し競合モニターを生成します。
//
// Timeoutの値がPollingInterval + SamplingInterval以下の場合、ErrInvalidConfigurationを返却します。
func NewWithConfig(c *KnockerConfig) (*Knocker, error) {
	if c.Prober == nil {
		return nil, errors.Errorf("prober is required: %w", errors.ErrInvalidConfiguration)
	}
	if c.Logger == nil {
		c.Logger = log.NewNop()
	}

	polling := defaultPollingInterval
	if c.PollingInterval != nil {
		polling = *c.PollingInterval
	}
	sampling := polling * time.Duration(defaultSamplingFactor)
	if c.SamplingInterval != nil {
		sampling = *c.SamplingInterval
	}
	timeout := polling + sampling + defaultTimeoutSlack
	if c.Timeout != nil {
		timeout = *c.Timeout
	}

	if polling <= 0 {
		return nil, errors.Errorf("polling interval (%v) must be positive: %w", polling, errors.ErrInvalidConfiguration)
	}
	if sampling <= 0 {
		return nil, errors.Errorf("sampling interval (%v) must be positive: %w", sampling, errors.ErrInvalidConfiguration)
	}
	if timeout <= polling+sampling {
		return nil, errors.ConfigError{
			PollingInterval:  polling,
			SamplingInterval: sampling,
			Timeout:          timeout,
		}
	}

	return &Knocker{
		state:            newMonitorState(),
		metric:           &metricCell{},
		prober:           c.Prober,
		pollingInterval:  polling,
		samplingInterval: sampling,
		timeout:          timeout,
		logger:           c.Logger,

		Config: *c,
	}, nil
}

// Knockerは、監視対象ロックの競合モニターです。
//
// バックグラウンドのモニターゴルーチンが一定周期でロック取得を試行し、
// 待ち時間とサンプリング時間の累計から競合率（0に近いほど競合が少ない）を算出します。
type Knocker struct {
	mu     sync.Mutex
	state  *monitorState
	metric *metricCell

	ctrlCh chan controlMessage
	ackCh  chan struct{}
	eg     *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc

	prober           Prober
	pollingInterval  time.Duration
	samplingInterval time.Duration
	timeout          time.Duration
	logger           log.Logger

	// モニターの設定
	Config KnockerConfig
}

// Startは、バックグラウンドでのロック競合の計測を開始します。
//
// 既に計測中の場合、ErrAlreadyRunningを返却します。
// 停止後に再度Startすることで計測を再開できます。再開時、メトリクスはゼロから計測し直します。
func (k *Knocker) Start() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.state.CompareAndSwapNot(statusRunning, statusRunning) {
		return errors.ErrAlreadyRunning
	}

	k.metric.Store(0)
	k.ctrlCh = make(chan controlMessage)
	k.ackCh = make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(log.WithTrackMonitorID(context.Background()))
	k.ctx = ctx
	k.cancel = cancel

	m := &monitor{
		prober:           k.prober,
		pollingInterval:  k.pollingInterval,
		samplingInterval: k.samplingInterval,
		metric:           k.metric,
		ctrlCh:           k.ctrlCh,
		ackCh:            k.ackCh,
		state:            k.state,
		logger:           k.logger,
	}
	eg, ctx := errgroup.WithContext(ctx)
	k.eg = eg
	eg.Go(func() error {
		// Cancel on exit so an abandoned sampling window winds down
		// promptly instead of running out its full interval.
		defer cancel()
		m.run(ctx)
		return nil
	})

	k.logger.Infof(ctx, "started contention monitor: polling=%v sampling=%v timeout=%v",
		k.pollingInterval, k.samplingInterval, k.timeout)
	return nil
}

// Stopは、ロック競合の計測を停止します。
//
// モニターゴルーチンの終了をタイムアウトまで待機します。
// タイムアウトした場合はErrStopTimeoutを返却します。このときゴルーチンは回収されていません。
// 計測中でない場合、ErrNotRunningを返却します。
func (k *Knocker) Stop() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.state.Is(statusRunning) {
		return errors.ErrNotRunning
	}

	ctx, cancel := context.WithTimeout(k.ctx, k.timeout)
	defer cancel()
	ch.WriteOrDone(ctx, controlStop, k.ctrlCh)

	// Coarse 100ms checks, scaled down so short timeouts still get a
	// few checks before the budget runs out.
	interval := defaultStopPollInterval
	if k.timeout/10 < interval {
		interval = k.timeout / 10
	}
	p := poll.Poll{Interval: interval, Budget: k.timeout}
	if !p.Do(func() (done bool) { return k.state.Is(statusStopped) }) {
		k.logger.Errorf(k.ctx, "monitor did not stop within %v (state: %v)", k.timeout, k.state.Current())
		return errors.ErrStopTimeout
	}
	k.cancel()
	if err := k.eg.Wait(); err != nil {
		return errors.Errorf("failed to join monitor: %v: %w", err, errors.ErrInternal)
	}
	k.logger.Infof(k.ctx, "stopped contention monitor")
	return nil
}

// Resetは、累計の待ち時間とサンプリング時間をゼロクリアし、メトリクスをゼロに戻します。
//
// モニターゴルーチンからの応答をタイムアウトまで待機します。応答が得られなかった場合でも
// メトリクスはローカルにゼロ化した上で、回復可能なエラーとしてErrResetNotAcknowledgedを返却します。
// 計測中でない場合、ErrNotRunningを返却します。
func (k *Knocker) Reset() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.state.Is(statusRunning) {
		return errors.ErrNotRunning
	}

	// Drop a stale acknowledgement left over from a timed-out reset.
	select {
	case <-k.ackCh:
	default:
	}

	ctx, cancel := context.WithTimeout(k.ctx, k.timeout)
	defer cancel()
	if !ch.WriteOrDone(ctx, controlReset, k.ctrlCh) {
		k.metric.Store(0)
		k.logger.Warnf(k.ctx, "could not send reset, metric zeroed locally")
		return errors.ErrResetNotAcknowledged
	}
	if _, ok := ch.ReadOrDoneOne(ctx, k.ackCh); !ok {
		k.metric.Store(0)
		k.logger.Warnf(k.ctx, "reset was not acknowledged in time, metric zeroed locally")
		return errors.ErrResetNotAcknowledged
	}
	return nil
}

// ContentionMetricは、最後に公開された競合率を返却します。
//
// ブロックせずいつでも読み出せます。ウィンドウが1つも完了していない間は0を返却します。
// 値は累計待ち時間÷累計サンプリング時間で、理論上は0〜1の範囲ですが上限クランプはしません。
func (k *Knocker) ContentionMetric() float64 {
	return k.metric.Load()
}

// IsRunningは、計測中かどうかを返却します。
func (k *Knocker) IsRunning() bool {
	return k.state.Is(statusRunning)
}
