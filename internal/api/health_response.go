package api

// swagger:model api.HealthResponse
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-05-01T12:00:00Z"`
}

// swagger:model api.PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
