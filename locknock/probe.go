package locknock

import (
	"sync"
	"time"
)

// Proberは、監視対象ロックをプローブするためのインターフェースです。
type Prober interface {
	// Probeは、監視対象ロックを1回だけブロッキング取得し、取得後すぐに解放します。
	//
	// 取得開始から取得完了までの待ち時間を返却します。
	// 監視対象は同一プロセス内の協調的ロックであるため、取得はいずれ必ず成功します。
	Probe() time.Duration
}

// ProberFuncは、監視対象ロックをプローブする関数です。
//
// ProberFuncは、Proberとして使用できます。Proberとして使用した場合、関数をそのままコールします。
type ProberFunc func() time.Duration

// Probeは、監視対象ロックをプローブします。
func (f ProberFunc) Probe() time.Duration {
	return f()
}

// LockerProberは、sync.Lockerを監視対象とするProberです。
//
// ホストランタイムのグローバルロックがsync.Lockerとして公開されている場合のアダプターとして使用します。
type LockerProber struct {
	l sync.Locker
}

// NewLockerProberは、LockerProberを生成します。
func NewLockerProber(l sync.Locker) *LockerProber {
	return &LockerProber{
		l: l,
	}
}

// Probeは、ロックを取得し即座に解放し、取得までの待ち時間を返却します。
func (p *LockerProber) Probe() time.Duration {
	start := time.Now()
	p.l.Lock()
	elapsed := time.Since(start)
	p.l.Unlock()
	return elapsed
}
