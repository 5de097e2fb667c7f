package service

import "time"

// Clock supplies the current time. Injected so the backoff gate can be
// tested deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock [Clock] used outside tests.
func SystemClock() Clock { return systemClock{} }
