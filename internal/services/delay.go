package services

import (
	"context"
	"time"
)

// Delayer is the injectable wait the simulated services use to emulate
// network latency. Production wiring sleeps for real; tests inject the
// zero-delay variant so suites run synchronously.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

type networkDelayer struct{}

func NewNetworkDelayer() Delayer {
	return networkDelayer{}
}

func (networkDelayer) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type noDelayer struct{}

func NewNoDelayer() Delayer {
	return noDelayer{}
}

func (noDelayer) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
