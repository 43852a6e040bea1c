package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TianMHDev/portfolio-panel/reconcile"
)

type portfolioHandler struct {
	responder Responder
	logger    zerolog.Logger
	engine    *reconcile.Engine
}

func newPortfolioHandler(engine *reconcile.Engine) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder: NewResponder(logger),
		logger:    logger,
		engine:    engine,
	}
}

// getPortfolio returns the public view state: seed content reconciled with
// whatever the backend currently holds. This never fails; when the backend is
// down the snapshot simply equals the seed catalog.
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := h.engine.Load(r.Context())
		h.responder.WriteJSON(w, snapshot)
	}
}
