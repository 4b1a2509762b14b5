package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorDetail struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

type ErrorResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Error   string        `json:"error,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
	Data    interface{}   `json:"data,omitempty"`
}
