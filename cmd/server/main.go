package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"route-planner-service/internal/adapters/cache"
	"route-planner-service/internal/adapters/repositories"
	"route-planner-service/internal/api"
	"route-planner-service/internal/api/handlers"
	"route-planner-service/internal/config"
	"route-planner-service/internal/platform/db"
	"route-planner-service/internal/platform/metrics"
	"route-planner-service/internal/services"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (SQL fleet store, Redis plan cache) behind ports
// and starts the HTTP server.
func main() {
	config.Load()
	metrics.Register()

	port := config.Get("PORT", "8080")

	opts, err := services.PlanOptionsFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routerCfg := api.RouterConfig{
		Options:        opts,
		RateLimitRPS:   config.GetFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: config.GetInt("RATE_LIMIT_BURST", 20),
		MaxBodyBytes:   int64(config.GetInt("MAX_BODY_BYTES", handlers.DefaultMaxBodyBytes)),
		MaxLocations:   config.GetInt("MAX_LOCATIONS", handlers.DefaultMaxLocations),
	}

	// The fleet store is optional; without it only POST /plans is served.
	if driver := config.Get("DB_DRIVER", ""); driver != "" {
		conn, repo, err := openFleetStore(ctx, driver)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
		routerCfg.Fleet = repo
	}

	if url := config.Get("REDIS_URL", ""); url != "" {
		ttl := config.GetDuration("PLAN_CACHE_TTL", 10*time.Minute)
		planCache, err := cache.OpenRedisPlanCache(ctx, url, ttl)
		if err != nil {
			log.Fatal(err)
		}
		defer planCache.Client.Close()
		routerCfg.Cache = planCache
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           api.NewRouter(routerCfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// openFleetStore connects, ensures the schema and seeds demo data when
// SEED_PATH points at a file.
func openFleetStore(ctx context.Context, driver string) (*sql.DB, *repositories.SQLFleetRepository, error) {
	dialect, err := repositories.ParseDialect(driver)
	if err != nil {
		return nil, nil, err
	}

	conn, err := db.Connect(driver, config.Get("DB_PATH", "data/app.db"), config.Get("DATABASE_URL", ""))
	if err != nil {
		return nil, nil, err
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}

	if seedPath := config.Get("SEED_PATH", ""); seedPath != "" {
		if err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath); err != nil {
			conn.Close()
			return nil, nil, err
		}
	}

	if dialect == repositories.DialectPostgres {
		return conn, repositories.NewPostgresFleetRepository(conn), nil
	}
	return conn, repositories.NewSqliteFleetRepository(conn), nil
}
