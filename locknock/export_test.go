package locknock

import "time"

func (k *Knocker) ResolvedIntervals() (polling, sampling, timeout time.Duration) {
	return k.pollingInterval, k.samplingInterval, k.timeout
}
