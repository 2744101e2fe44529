package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	listings_handlers *ListingsHandler,
	inquiry_handlers *InquiryHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// роуты каталога; /featured и /counts объявлены до /{slug},
		// иначе chi примет их за slug
		r.Get("/listings", listings_handlers.BrowseListings)
		r.Get("/listings/featured", listings_handlers.GetFeaturedListings)
		r.Get("/listings/counts", listings_handlers.GetListingCounts)
		r.Get("/listings/{slug}", listings_handlers.GetListingDetails)

		r.Post("/inquiries", inquiry_handlers.SubmitInquiry)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
