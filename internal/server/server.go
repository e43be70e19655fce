package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/book-reader/internal/book"
	"github.com/ziadkadry99/book-reader/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the reader page, the table of contents API and the
// position websocket for one book.
type Server struct {
	cfg        Config
	book       *book.Book
	site       *site.Site
	log        *logrus.Entry
	router     chi.Router
	httpServer *http.Server
}

// New renders b and builds the router. The page is rendered once; the book
// and its chapter tree are shared read-only by all requests.
func New(cfg Config, b *book.Book, opts site.Options, log *logrus.Entry) (*Server, error) {
	opts.BasePath = "/"
	opts.Live = true
	rendered, err := site.Render(b, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering book: %w", err)
	}

	s := &Server{
		cfg:  cfg,
		book: b,
		site: rendered,
		log:  log,
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The websocket is long-lived and must not be cut by the timeout.
	r.Get("/ws/position", s.handlePosition)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Route("/api", func(r chi.Router) {
			r.Get("/book", s.handleBook)
			r.Get("/headings", s.handleHeadings)
			r.Get("/chapters", s.handleChapters)
			r.Get("/chapters/{id}", s.handleChapter)
			r.Get("/resolve", s.handleResolve)
		})
		r.Get("/*", s.handleStatic)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.WithField("addr", addr).Info("bookreader server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// requestLogger logs one line per request through log.
func requestLogger(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			}).Debug("request")
		})
	}
}
