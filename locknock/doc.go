/*
Package locknockは、プロセス内で共有される単一の協調的ロックの競合率を計測するパッケージです。

バックグラウンドのモニターゴルーチンが一定周期で監視対象ロックの取得を試行し、
取得までの待ち時間の累計とサンプリング時間の累計の比から競合率を算出します。
値が1に近いほどロックの取得で待たされていること（競合が激しいこと）を示し、
0に近いほど競合が少ないことを示します。計測はワークロードと並行して動作し、
ワークロードへの影響は最小限に抑えられます。

# Usage

	package main

	import (
		"fmt"
		"sync"
		"time"

		"github.com/locknock/locknock-go/locknock"
	)

	func main() {
		var mu sync.Mutex

		knocker, err := locknock.New(locknock.NewLockerProber(&mu))
		if err != nil {
			panic(err)
		}
		if err := knocker.Start(); err != nil {
			panic(err)
		}

		// ... 監視対象ロックを使用するワークロード ...
		time.Sleep(time.Second)

		if err := knocker.Stop(); err != nil {
			panic(err)
		}
		fmt.Printf("contention: %.4f\n", knocker.ContentionMetric())
	}

競合率はいつでも読み出せます。計測中に累計をゼロクリアする場合はResetを使用します。
ロックの取得・解放の手段はProberインターフェースとして外部から注入するため、
sync.Locker以外のロック（ホストランタイム固有のグローバルロックなど）も監視できます。
*/
package locknock
