package state

import "time"

// 現在時刻の約束（テストで差し替える）
type Clock interface {
	Now() time.Time
}

// 予約済みワンショットタイマーのハンドル。Stopは発火前ならtrue。
type TimerHandle interface {
	Stop() bool
}

// 一回きりの遅延実行を予約する約束
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) TimerHandle
}

type systemClock struct{}

// 実時刻
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemScheduler struct{}

// time.AfterFuncそのまま
func NewSystemScheduler() Scheduler {
	return systemScheduler{}
}

func (systemScheduler) AfterFunc(d time.Duration, f func()) TimerHandle {
	return time.AfterFunc(d, f)
}
