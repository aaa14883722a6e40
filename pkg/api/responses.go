package api

import "time"

// Model is the public shape of one registry entry.
type Model struct {
	ID            string   `json:"id"`
	Provider      string   `json:"provider"`
	Capabilities  []string `json:"capabilities"`
	ContextWindow int      `json:"context_window"`
	Default       bool     `json:"default"`
}

// SelectResponse carries the routing decision.
type SelectResponse struct {
	Model Model `json:"model"`
}

// ModelList wraps registry listings.
type ModelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// SelectionRecord is one audited routing decision.
type SelectionRecord struct {
	ID                string    `json:"id"`
	ModelID           string    `json:"model_id,omitempty"`
	Provider          string    `json:"provider,omitempty"`
	Capabilities      string    `json:"capabilities,omitempty"`
	PreferredProvider string    `json:"preferred_provider,omitempty"`
	Outcome           string    `json:"outcome"`
	AppName           string    `json:"app_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// DailyUsage aggregates selections for one day.
type DailyUsage struct {
	Day        string `json:"day"`
	Selections int64  `json:"selections"`
	Misses     int64  `json:"misses"`
}

// ErrorResponse is the minimal error shape for middleware rejections.
type ErrorResponse struct {
	Message string `json:"message"`
}
