// README: Entry point; loads config, wires providers and services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dayplan/internal/ai"
	"dayplan/internal/config"
	httptransport "dayplan/internal/http"
	"dayplan/internal/infra"
	"dayplan/internal/maps"
	"dayplan/internal/modules/usage"
	"dayplan/internal/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	textProvider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer textProvider.Close()

	var imageProvider ai.ImageGenerator
	if cfg.AI.OpenAIKey != "" {
		openaiProvider, err := ai.NewOpenAIImageProvider(cfg.AI.OpenAIKey)
		if err != nil {
			log.Fatalf("openai init: %v", err)
		}
		imageProvider = openaiProvider
	} else {
		log.Printf("OPENAI_API_KEY not set; image enrichment disabled")
	}

	var geocoder planner.Geocoder
	if cfg.Maps.APIKey != "" {
		geocodeSvc, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = geocodeSvc
	} else {
		log.Printf("MAPS_API_KEY not set; coordinate backfill disabled")
	}

	plannerSvc := planner.NewService(textProvider, imageProvider, geocoder)
	planStore := planner.NewStore(redisClient)

	usageStore := usage.NewStore(dbPool, cfg.Quota.MonthlyPlans)
	usageSvc := usage.NewService(usageStore)

	handler := httptransport.NewRouter(plannerSvc, planStore, usageSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
