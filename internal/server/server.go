package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/feedworks/feedlens/internal/handler"
	"github.com/feedworks/feedlens/internal/middleware"
)

// Server wraps the HTTP server
type Server struct {
	port            string
	feedbackHandler *handler.FeedbackHandler
	authMiddleware  *middleware.AuthMiddleware
}

// New creates a new HTTP server
func New(port string, seedAuthToken string, feedbackHandler *handler.FeedbackHandler) *Server {
	return &Server{
		port:            port,
		feedbackHandler: feedbackHandler,
		authMiddleware:  middleware.NewAuthMiddleware(seedAuthToken),
	}
}

// Routes builds the HTTP mux
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/store", s.authMiddleware.Authenticate(s.feedbackHandler.HandleSeed))
	mux.HandleFunc("/api/items", s.feedbackHandler.HandleItems)
	mux.HandleFunc("/api/analyze", s.feedbackHandler.HandleAnalyze)
	mux.HandleFunc("/api/digest", s.feedbackHandler.HandleDigest)
	mux.HandleFunc("/digest", s.feedbackHandler.HandleDigestPage)
	mux.HandleFunc("/health", handler.HandleHealth)
	return mux
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("HTTP server listening on :%s", s.port)
	if err := http.ListenAndServe(":"+s.port, s.Routes()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
