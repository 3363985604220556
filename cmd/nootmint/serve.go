package main

import (
	"net/http"

	"github.com/nootlab/nootmint/internal/domain"
	httpserver "github.com/nootlab/nootmint/internal/server"
	"github.com/nootlab/nootmint/pkg/prometheus"
	"github.com/nootlab/nootmint/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startServe(*cli.Context) error {
	if err := s.loadMint(); err != nil {
		return err
	}
	s.loadSessions()

	cfg := xcontext.Configs(s.ctx)
	go func() {
		promHandler := prometheus.NewHandler()

		httpSrv := &http.Server{
			Addr:    cfg.Prometheus.Address(),
			Handler: promHandler,
		}
		xcontext.Logger(s.ctx).Infof("Starting prometheus on port: %s", cfg.Prometheus.Port)
		if err := httpSrv.ListenAndServe(); err != nil {
			xcontext.Logger(s.ctx).Errorf("Prometheus server stopped: %v", err)
		}
	}()

	mintServer := httpserver.New(s.ctx, domain.NewMintDomain(s.sessions, s.viewOpts))
	return mintServer.ListenAndServe(s.ctx, cfg.Server.Address())
}
