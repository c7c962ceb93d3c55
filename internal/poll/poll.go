package poll

import "time"

var (
	sleep           = time.Sleep
	defaultInterval = 100 * time.Millisecond
)

// Pollは固定間隔のsleep-and-check方式で条件成立を待ちます。
type Poll struct {
	// 条件を確認する間隔。デフォルトは100ミリ秒です。
	Interval time.Duration

	// 待機時間の上限。0は待機し続けます。デフォルトは0です。
	Budget time.Duration
}

// CondFuncは、待機対象の条件を確認する関数です。
type CondFunc func() (done bool)

// Doは、fがtrueを返すまで条件確認を繰り返します。
//
// 上限時間内に条件が成立した場合はtrueを、上限を超えた場合はfalseを返却します。
func (p Poll) Do(f CondFunc) bool {
	interval := p.Interval
	if interval == 0 {
		interval = defaultInterval
	}
	var waited time.Duration
	for {
		if f() {
			return true
		}
		if p.Budget != 0 && waited+interval > p.Budget {
			return false
		}
		sleep(interval)
		waited += interval
	}
}

func Do(budget time.Duration, f CondFunc) bool {
	p := Poll{Budget: budget}
	return p.Do(f)
}
