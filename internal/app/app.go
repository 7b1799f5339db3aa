package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/team-registry/internal/config"
	"github.com/riskibarqy/team-registry/internal/domain/player"
	"github.com/riskibarqy/team-registry/internal/domain/team"
	cacherepo "github.com/riskibarqy/team-registry/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/team-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/team-registry/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/team-registry/internal/platform/cache"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/riskibarqy/team-registry/internal/platform/metrics"
	"github.com/riskibarqy/team-registry/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		seedTeams   []team.Team
		seedPlayers []player.Player
	)
	if cfg.SeedDemoData {
		seedTeams = memory.SeedTeams()
		seedPlayers = memory.SeedPlayers()
		logger.Info("demo data seeded", "teams", len(seedTeams), "players", len(seedPlayers))
	}

	var teamRepo team.Repository = memory.NewTeamRepository(seedTeams)
	if cfg.CacheEnabled {
		teamRepo = cacherepo.NewTeamRepository(teamRepo, basecache.NewStore(cfg.CacheTTL))
	}
	playerRepo := memory.NewPlayerRepository(seedPlayers)

	routerOpts := httpapi.RouterOptions{CORSAllowedOrigins: cfg.CORSAllowedOrigins}
	var recorder usecase.MutationRecorder
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := metrics.New(reg, usecase.ErrorKind)
		recorder = m
		routerOpts.Metrics = m
		routerOpts.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	registry := usecase.NewRegistryService(teamRepo, playerRepo, recorder, logger)
	reportSvc := usecase.NewReportService(registry, cfg.ReportWorkers, logger)
	importSvc := usecase.NewImportService(registry, cfg.ImportWorkers, logger)

	handler := httpapi.NewHandler(registry, reportSvc, importSvc, logger)
	router := httpapi.NewRouter(handler, logger, routerOpts)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
