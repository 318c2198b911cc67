package dto

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	History  string `json:"history"`
}
