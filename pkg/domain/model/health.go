package model

// HealthStatus is the body of GET /health. Repository and Branch name what
// push webhooks are matched against.
type HealthStatus struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Version    string `json:"version"`
	Repository string `json:"repository,omitempty"`
	Branch     string `json:"branch,omitempty"`
}
