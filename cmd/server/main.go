package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"socialboot/internal/app"
	"socialboot/internal/audit"
	auditkafka "socialboot/internal/audit/kafka"
	"socialboot/internal/bootstrap"
	"socialboot/internal/platform/config"
	"socialboot/internal/platform/httpserver"
	"socialboot/internal/platform/logger"
	"socialboot/internal/platform/metrics"
	"socialboot/internal/reward"
	httptransport "socialboot/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the store packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store, closeKV, err := bootstrap.OpenKV(ctx, cfg, m)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeKV(); err != nil {
			log.Error("failed to close key-value store", "error", err)
		}
	}()
	log.Info("key-value store ready", "backend", cfg.KVBackend)

	rewards, err := reward.LoadFile(cfg.RewardsCatalogPath)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	var sink audit.Sink = audit.NewLogSink(log)
	if len(cfg.Audit.Brokers) > 0 {
		kafkaSink, err := auditkafka.New(cfg.Audit.Brokers, cfg.Audit.Topic)
		if err != nil {
			return err
		}
		defer kafkaSink.Close()
		if err := kafkaSink.EnsureTopic(ctx, 1, 1); err != nil {
			return err
		}
		worker := audit.NewWorker(kafkaSink, 0, log)
		g.Go(func() error {
			if err := worker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
		sink = worker
		log.Info("audit events forwarded to kafka", "topic", cfg.Audit.Topic)
	}

	authenticator, _ := bootstrap.NewAuthenticator(cfg.Auth, store)
	a, err := app.New(ctx, app.Deps{
		KV:            store,
		Logger:        log,
		Authenticator: authenticator,
		Metrics:       m,
		Audit:         audit.NewPublisher(sink),
		Rewards:       rewards,
	})
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(a, httptransport.RouterConfig{
		Logger:         log,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	srv := httpserver.New(cfg.Addr, router)

	g.Go(func() error {
		log.Info("starting socialboot", "addr", cfg.Addr, "auth_mode", cfg.Auth.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
