package domain

import "time"

// HealthStatusHealthy is the only status the service reports
const HealthStatusHealthy = "healthy"

// HealthStatus represents the response of the health endpoint
type HealthStatus struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Environment  string    `json:"environment"`
	Organization string    `json:"organization"`
	DatasetID    string    `json:"dataset_id"`
	GeneratedAt  time.Time `json:"generated_at"`
}
