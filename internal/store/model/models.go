package model

import "time"

// APIKey is an issued credential for the routing API.
type APIKey struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	KeyHash      string     `db:"key_hash"`
	KeyPrefix    string     `db:"key_prefix"`
	IsActive     bool       `db:"is_active"`
	RequestCount int64      `db:"request_count"`
	LastUsedAt   *time.Time `db:"last_used_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Selection outcomes recorded in the audit log.
const (
	OutcomeSelected = "selected" // a capability match won
	OutcomeDefault  = "default"  // degraded to the default model
	OutcomeMiss     = "miss"     // preferred provider required and unsatisfiable
)

// SelectionLog is one routing decision.
type SelectionLog struct {
	ID                string        `db:"id"`
	ModelID           string        `db:"model_id"` // empty on a miss
	Provider          string        `db:"provider"`
	Capabilities      string        `db:"capabilities"` // comma-joined request tags
	PreferredProvider string        `db:"preferred_provider"`
	Outcome           string        `db:"outcome"`
	AppName           string        `db:"app_name"`
	Latency           time.Duration `db:"latency"`
	CreatedAt         time.Time     `db:"created_at"`
}

// DailyStats aggregates selections per day.
type DailyStats struct {
	Day        string `db:"day"`
	Selections int64  `db:"selections"`
	Misses     int64  `db:"misses"`
}
