package server

import (
	"context"
	"net/http"

	"github.com/nootlab/nootmint/internal/domain"
	"github.com/nootlab/nootmint/internal/middleware"
	"github.com/nootlab/nootmint/pkg/router"
	"github.com/nootlab/nootmint/pkg/xcontext"
)

type Server struct {
	ctx        context.Context
	router     *router.Router
	mintDomain domain.MintDomain
}

// New registers the mint page and the JSON API. ctx carries the logger and configs used by
// every request.
func New(ctx context.Context, mintDomain domain.MintDomain) *Server {
	s := &Server{
		ctx:        ctx,
		router:     router.New(ctx),
		mintDomain: mintDomain,
	}

	s.loadRoutes()
	return s
}

func (s *Server) loadRoutes() {
	cfg := xcontext.Configs(s.ctx)

	s.router.Use(middleware.AllowCors(cfg.Server.AllowedOrigins))
	s.router.Handle("/", http.HandlerFunc(s.page))

	// Mint API
	api := s.router.Branch()
	api.Before(middleware.WithStartTime())
	api.AddCloser(middleware.Prometheus())
	api.AddCloser(middleware.Logger())

	router.GET(api, "/api/mint", s.mintDomain.Get)
	router.POST(api, "/api/mint/reload", s.mintDomain.Reload)
	router.POST(api, "/api/mint/{kind}", s.mintDomain.Mint)
}

func (s *Server) Handler() http.Handler {
	return s.router.Handler()
}

// ListenAndServe serves until ctx is done, then shuts the listener down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot shutdown server: %v", err)
		}
	}()

	xcontext.Logger(s.ctx).Infof("Starting server on %s", addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}
