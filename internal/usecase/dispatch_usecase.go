package usecase

import (
	"context"
)

// CycleStats summarizes one dispatch cycle for logging and the ops surface.
type CycleStats struct {
	Reclaimed int `json:"reclaimed"` // Stale processing records rescued back to pending.
	Due       int `json:"due"`       // Records selected as due this cycle.
	Claimed   int `json:"claimed"`   // Claims won by this instance.
	Succeeded int `json:"succeeded"` // Records delivered to the provider.
	Failed    int `json:"failed"`    // Records that reached failed state.
	Rearmed   int `json:"rearmed"`   // Records re-armed for a later retry.
	Skipped   int `json:"skipped"`   // Records terminally skipped by policy or deliverability.
}

// DispatchUsecase drives one bounded dispatch cycle: claim due records,
// evaluate policy, render, send, and transition state. Invoked periodically
// by the worker loop or an external cron driver.
type DispatchUsecase interface {
	RunDispatchCycle(ctx context.Context) (*CycleStats, error)
}
