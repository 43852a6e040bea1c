package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Deps) *routeHandlers {
	return &routeHandlers{
		portfolioHandler: newPortfolioHandler(deps.Engine),
		contactHandler:   newContactHandler(deps.Gateway),
		authHandler:      newAuthHandler(deps.Gateway, deps.Gate, deps.Cookies),
		projectHandler:   newProjectHandler(deps.Gateway),
		toolHandler:      newToolHandler(deps.Gateway),
		profileHandler:   newProfileHandler(deps.Gateway),
	}
}
