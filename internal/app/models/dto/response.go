package dto

// MessageResponse represents a standard success response for API endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// CountResponse carries a row count
type CountResponse struct {
	Count int64 `json:"count" example:"4"`
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
