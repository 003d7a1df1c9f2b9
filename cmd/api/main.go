package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend-pathpal/internal/config"
	"backend-pathpal/internal/db"
	"backend-pathpal/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// ListenFunc starts serving on addr and blocks until the app stops.
type ListenFunc func(app *fiber.App, addr string) error

// appDeps collects everything boot needs, so tests can substitute each
// piece.
type appDeps struct {
	config   func() config.Config
	postgres func(config.Config) (*pgxpool.Pool, error)
	redis    func(config.Config) *redis.Client
	notify   func(chan<- os.Signal, ...os.Signal)
	run      func(context.Context, config.Config, *pgxpool.Pool, *redis.Client, <-chan os.Signal, ListenFunc) error
}

var depsFn = liveDeps
var bootFn = boot

func main() {
	bootFn(depsFn())
}

func liveDeps() appDeps {
	return appDeps{
		config:   config.Load,
		postgres: db.ConnectPostgres,
		redis:    db.ConnectRedis,
		notify:   signal.Notify,
		run:      Run,
	}
}

func boot(deps appDeps) {
	cfg := deps.config()

	pg, err := deps.postgres(cfg)
	if err != nil {
		log.Printf("postgres connection failed: %v", err)
	}
	rdb := deps.redis(cfg)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, pg, rdb, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run serves until a signal arrives, the context is cancelled, or the
// listener fails, then shuts the app down and closes the pool and Redis
// client.
func Run(ctx context.Context, cfg config.Config, pg *pgxpool.Pool, rdb *redis.Client, signals <-chan os.Signal, listen ListenFunc) error {
	if listen == nil {
		listen = defaultListen
	}
	srv := server.NewServer(cfg, pg, rdb)

	listenErr := make(chan error, 1)
	go func() { listenErr <- listen(srv.App, cfg.ServerPort) }()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-listenErr:
		if err != nil {
			return err
		}
	}

	return stop(srv.App, pg, rdb)
}

func stop(app *fiber.App, pg *pgxpool.Pool, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdownFn(app, ctx); err != nil {
		return err
	}
	if pg != nil {
		pg.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	return nil
}
