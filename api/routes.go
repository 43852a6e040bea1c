package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes sets up the public site surface and the authenticated
// management panel.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public site endpoints
		r.Get("/view/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Post("/contact", handlers.contactHandler.sendMessage())

		// Session endpoints
		r.Post("/admin/login", handlers.authHandler.login())
		r.Post("/admin/logout", handlers.authHandler.logout())

		// Management panel endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/admin/projects", handlers.projectHandler.listProjects())
			r.Post("/admin/projects", handlers.projectHandler.createProject())
			r.Put("/admin/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Get("/admin/panel", handlers.profileHandler.getPanel())
			r.Post("/admin/profile", handlers.profileHandler.updateProfile())

			r.Post("/admin/tools", handlers.toolHandler.createTool())
			r.Put("/admin/tools/{toolID}", handlers.toolHandler.updateTool())
			r.Delete("/admin/tools/{toolID}", handlers.toolHandler.deleteTool())
		})
	})
}
