package handlers

// HealthResponse reports liveness and the content that is being served.
type HealthResponse struct {
	Status string `json:"status"`
	Notes  int    `json:"notes"`
	Lang   string `json:"lang"`
}
