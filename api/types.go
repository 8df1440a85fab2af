package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	designHandler      designHandler
	developmentHandler developmentHandler
	profileHandler     profileHandler
	contactHandler     contactHandler
	authHandler        authHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"name"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
