// File: server.go
// Title: HTTP Server
// Description: Gin server exposing the engine and the template scanner
//              over a JSON API: parse and validate command text, scan
//              template content, list languages and report health.
// Version: v0.1.0
// Created: 2025-11-18

package server

import (
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	lokalog "github.com/lokascript/semantic-go/core/log"
	"github.com/lokascript/semantic-go/scanner"
	"github.com/lokascript/semantic-go/semantic"
)

// Options configures server construction
type Options struct {
	// Engine resolves command text; required
	Engine *semantic.Engine

	// Scanner handles template scanning; a default one is built when nil
	Scanner *scanner.Scanner

	// Addr is the listen address, defaulting to ":8080"
	Addr string

	// Version is reported by the health endpoint
	Version string

	// Logger receives request logs
	Logger *lokalog.Logger
}

// Server serves the JSON API
type Server struct {
	engine  *semantic.Engine
	scanner *scanner.Scanner
	router  *gin.Engine
	logger  *lokalog.Logger
	addr    string
	version string
	started time.Time
	parses  atomic.Int64
}

// New creates a server and wires its routes
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = lokalog.GetDefault()
	}
	if opts.Scanner == nil {
		opts.Scanner = scanner.New(scanner.Options{Logger: opts.Logger})
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		engine:  opts.Engine,
		scanner: opts.Scanner,
		logger:  opts.Logger.WithField("component", "server"),
		addr:    opts.Addr,
		version: opts.Version,
		started: time.Now(),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), requestLogger(s.logger), gin.Recovery())

	router.POST("/parse", s.handleParse)
	router.POST("/validate", s.handleValidate)
	router.POST("/scan", s.handleScan)
	router.GET("/languages", s.handleLanguages)
	router.GET("/health", s.handleHealth)

	s.router = router
	return s
}

// Router exposes the underlying router, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving and blocks until the listener fails
func (s *Server) Run() error {
	s.logger.Info("server listening", lokalog.Fields{"addr": s.addr})
	return s.router.Run(s.addr)
}
