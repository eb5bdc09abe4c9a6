package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tendant/simple-cms/pkg/simplecms"
)

// NewRouter builds the HTTP router exposing the CMS API.
func NewRouter(service simplecms.Service) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/pages", NewPageHandler(service).Routes())
		r.Mount("/seo", NewSeoHandler(service).Routes())
		r.Mount("/announcements", NewAnnouncementHandler(service).Routes())
	})

	return r
}
