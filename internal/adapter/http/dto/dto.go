package dto

import "encoding/json"

// LeaderboardEntry is one row of the GET /leaderboard response.
// Amount is a JSON number rendered from an exact decimal string.
type LeaderboardEntry struct {
	Address string      `json:"address"`
	Amount  json.Number `json:"amount"`
}

// TotalResponse is the response body for GET /total.
type TotalResponse struct {
	TotalAmount json.Number `json:"totalAmount"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}
