package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	portfolioHandler portfolioHandler
	contactHandler   contactHandler
	authHandler      authHandler
	projectHandler   projectHandler
	toolHandler      toolHandler
	profileHandler   profileHandler
}

// statusResponse is the body for simple success/failure outcomes.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
