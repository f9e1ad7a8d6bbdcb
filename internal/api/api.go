// Package api exposes the small operational HTTP surface: health checking
// and the explicit catalog reload.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger
	catalog catalogReloader
	db      Pinger
}

type catalogReloader interface {
	Reload(ctx context.Context) error
	Size() int
}

// Pinger checks liveness of the catalog's backing database. A nil Pinger
// means the catalog has no database behind it (file source).
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewApi(logger *zap.SugaredLogger, catalog catalogReloader, db Pinger) *Api {
	a := &Api{
		logger:  logger,
		catalog: catalog,
		db:      db,
	}
	a.setupHandler()

	return a
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", a.healthcheckHandler)
	r.Post("/catalog/reload", a.reloadCatalogHandler)

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *Api) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"status": "available",
		"events": a.catalog.Size(),
	}

	if a.db != nil {
		if err := a.db.Ping(r.Context()); err != nil {
			a.serverErrorResponse(w, r, fmt.Errorf("database ping: %w", err))
			return
		}
		data["database"] = "ok"
	}

	if err := a.writeJSON(w, http.StatusOK, data, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) reloadCatalogHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.catalog.Reload(r.Context()); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	data := map[string]interface{}{
		"status": "reloaded",
		"events": a.catalog.Size(),
	}

	if err := a.writeJSON(w, http.StatusOK, data, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
