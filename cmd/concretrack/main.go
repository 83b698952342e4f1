package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Spok95/concretrack/internal/clock"
	"github.com/Spok95/concretrack/internal/config"
	"github.com/Spok95/concretrack/internal/domain/checklists"
	"github.com/Spok95/concretrack/internal/domain/dashboard"
	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/domain/orders"
	"github.com/Spok95/concretrack/internal/domain/plants"
	"github.com/Spok95/concretrack/internal/domain/projects"
	"github.com/Spok95/concretrack/internal/domain/recipes"
	"github.com/Spok95/concretrack/internal/infra/db"
	httpx "github.com/Spok95/concretrack/internal/infra/http"
	"github.com/Spok95/concretrack/internal/infra/logger"
	"github.com/Spok95/concretrack/internal/infra/metrics"
	"github.com/Spok95/concretrack/internal/infra/notify"
)

func newNotifier(cfg config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Telegram.Token == "" || cfg.Telegram.AdminChatID == 0 {
		log.Info("telegram alerts disabled")
		return notify.Nop{}
	}
	tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
	if err != nil {
		log.Error("telegram init failed, alerts disabled", "err", err)
		return notify.Nop{}
	}
	return tg
}

func main() {
	cfgPath := flag.String("config", "config/example.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.App.Env)

	loc, err := cfg.Location()
	if err != nil {
		log.Error("bad timezone", "err", err)
		os.Exit(1)
	}
	clk := clock.System{Loc: loc}
	now := clk.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var reg projects.Registry = projects.NewMemRegistry(projects.Seed(now))
	if cfg.Postgres.DSN != "" {
		if err := db.Migrate(cfg.Postgres.DSN); err != nil {
			log.Error("migrations failed", "err", err)
			return
		}
		log.Info("migrations applied")

		pool, err := db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Error("db connect failed", "err", err)
			return
		}
		defer pool.Close()
		log.Info("db connected")
		reg = projects.NewPGRepo(pool)
	} else {
		log.Info("no postgres dsn, using in-memory project registry")
	}

	mats, usage := materials.Seed(now)
	ledger := materials.NewLedger(clk, mats, usage)
	book := recipes.DefaultBook()
	engine := recipes.NewEngine(book, ledger)
	ord := orders.NewLifecycle(clk, reg, book, orders.Seed(now))
	cl := checklists.NewLifecycle(clk, checklists.Seed(now))
	pl, prod := plants.Seed(now)
	plantReg := plants.NewRegistry(clk, pl, prod)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(promReg, metrics.Sources{Materials: ledger, Orders: ord, Checklists: cl})
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		gatherer = promReg
	}

	router := httpx.NewRouter(httpx.Deps{
		Log:        log,
		Metrics:    m,
		Gatherer:   gatherer,
		Materials:  ledger,
		Recipes:    engine,
		Orders:     ord,
		Checklists: cl,
		Plants:     plantReg,
		Dashboard:  dashboard.NewService(clk, ledger, ord, cl, plantReg),
		Alerts:     notify.NewStockAlerter(newNotifier(cfg, log), log, cfg.Inventory.AlertOn, m.StockAlerts.Inc),
	})

	srv := httpx.New(cfg.HTTP.Addr, router)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			stop()
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr, "timezone", loc.String())

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
