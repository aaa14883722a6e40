package api

// SelectRequest asks the router for the best-fit model.
type SelectRequest struct {
	// Capabilities the task needs. Empty means no requirements: the default
	// model is returned.
	Capabilities []string `json:"capabilities"`

	// PreferredProvider restricts routing to one vendor when set.
	PreferredProvider string `json:"preferred_provider,omitempty"`

	// FallbackAllowed controls behavior when the preferred provider has no
	// match. Omitted means true.
	FallbackAllowed *bool `json:"fallback_allowed,omitempty"`
}
