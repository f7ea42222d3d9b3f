package server

import "context"

// HealthChecker answers liveness probes.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker always reports healthy. The survey server has no downstream
// dependency whose failure should flip the probe; a broken mail transport is
// surfaced per delivery attempt instead.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(_ context.Context) bool {
	return true
}
