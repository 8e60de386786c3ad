package models

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	// Status repeats the HTTP status code.
	Status int `json:"status"`

	// Error is the standard status text (e.g. "Not Found").
	Error string `json:"error"`

	// Message describes what went wrong in terms the client can act on.
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// IndexResponse is returned by the service root.
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}
