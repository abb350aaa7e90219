package models

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationError struct {
	Context     string `json:"context"`
	Description string `json:"description"`
}

// ValidationErrorResponse lists every problem found in a submitted config.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}
