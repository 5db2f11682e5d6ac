package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teepress/mockup-tools/internal/config"
	"github.com/teepress/mockup-tools/internal/mockup"
	"github.com/teepress/mockup-tools/internal/placement"
)

// Server wires the HTTP API to the upload store and mockup generator.
type Server struct {
	cfg    *config.Config
	store  *Store
	router *gin.Engine
}

// New creates a server instance with an empty upload store.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		store:  NewStore(),
		router: gin.Default(),
	}
	s.registerRoutes()
	return s
}

// Run starts the HTTP listener and blocks until it exits.
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%d", s.cfg.Port))
}

// ServeHTTP implements http.Handler, primarily for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/designs", s.uploadDesigns)
		api.POST("/templates", s.uploadTemplates)
		api.PUT("/designs/:name", s.renameDesign)
		api.GET("/uploads", s.listUploads)
		api.DELETE("/uploads", s.clearUploads)
		api.POST("/preview", s.preview)
		api.POST("/generate", s.generate)
	}
}

// generator builds a per-request Generator, applying an optional parameter
// override without touching the configured defaults.
func (s *Server) generator(override *placement.ParamSet) *mockup.Generator {
	gen := &mockup.Generator{
		Detect:  s.cfg.Detection,
		Params:  s.cfg.Placement,
		Workers: s.cfg.Workers,
	}
	if override != nil {
		gen.Params = *override
	}
	return gen
}
