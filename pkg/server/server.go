// Package server is the HTTP boundary around the stateless core. It decodes
// requests, invokes the forge and key operations, and wraps every result in
// the uniform response envelope.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Server serves the instruction-building and key operation endpoints.
type Server struct {
	log  *logrus.Entry
	http *http.Server
}

// New creates a Server bound to cfg.ListenAddress.
func New(cfg Config) *Server {
	s := &Server{
		log: logrus.StandardLogger().WithField("type", "server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", s.ping)
	mux.HandleFunc("POST /keypair", s.generateKeypair)
	mux.HandleFunc("POST /token/create", s.createToken)
	mux.HandleFunc("POST /token/mint", s.mintToken)
	mux.HandleFunc("POST /token/address", s.deriveTokenAddress)
	mux.HandleFunc("POST /message/sign", s.signMessage)
	mux.HandleFunc("POST /message/verify", s.verifyMessage)
	mux.HandleFunc("POST /send/sol", s.sendSol)
	mux.HandleFunc("POST /send/token", s.sendToken)

	s.http = &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Run serves until Shutdown is called. It always returns a non-nil error;
// after a graceful shutdown the error is http.ErrServerClosed.
func (s *Server) Run() error {
	s.log.WithField("address", s.http.Addr).Info("listening")
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"duration":   time.Since(start),
		}).Debug("handled request")
	})
}
