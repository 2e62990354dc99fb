package database

import (
	"context"
	stdsql "database/sql"
	"time"
)

// HealthStatus describes database reachability for the health endpoint.
type HealthStatus struct {
	Reachable bool   `json:"reachable"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Health pings the database and reports round-trip latency.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	status := HealthStatus{
		Reachable: err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		status.Error = err.Error()
		return status, err
	}
	return status, nil
}
