package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"originbot/api"
	"originbot/ingest"
	"originbot/orchestrator"
	"originbot/search"
	"originbot/session"
	"originbot/stats"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	settings := LoadSettings()

	sessions := session.NewStore(session.StoreConfig{
		SlotTTL:   settings.SlotTTL,
		Threshold: settings.Threshold,
	})
	defer sessions.Close()

	orch, err := orchestrator.New(orchestrator.Config{
		Separator:       settings.Separator,
		CaseInsensitive: settings.CaseInsensitive,
		Threshold:       settings.Threshold,
		Sessions:        sessions,
		Stats:           stats.NewUsage(),
		Searcher:        initializeSearcher(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize orchestrator: %v", err)
	}

	if len(settings.KafkaBrokers) > 0 {
		consumer, err := ingest.NewConsumer(ingest.ConsumerConfig{
			Brokers: settings.KafkaBrokers,
			Topic:   settings.KafkaTopic,
			GroupID: settings.KafkaGroupID,
			Handler: ingest.NewCheckHandler(orch, nil),
		})
		if err != nil {
			log.Fatalf("Failed to initialize Kafka consumer: %v", err)
		}
		if err := consumer.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start Kafka consumer: %v", err)
		}
		defer consumer.Close()
	}

	r := api.NewRouter(orch)
	log.Printf("Starting API server on %s", settings.Addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/stats")
	log.Println("  POST /api/check/text")
	log.Println("  POST /api/check/pair")
	log.Println("  POST /api/check/document")
	log.Println("  POST /api/check/url")

	if err := http.ListenAndServe(settings.Addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// initializeSearcher builds the evidence searcher if a search backend is
// configured via env. Required: GOOGLE_CSE_KEY, GOOGLE_CSE_ID. Optional:
// REDIS_ADDR enables the query-result cache.
func initializeSearcher() orchestrator.Searcher {
	backend, err := search.NewGoogleCSEFromEnv(context.Background())
	if err != nil {
		log.Printf("Warning: search backend not configured: %v (originality checks disabled)", err)
		return nil
	}

	var cache search.Cache
	if os.Getenv("REDIS_ADDR") != "" {
		redisCache, err := search.NewRedisCacheFromEnv()
		if err != nil {
			log.Printf("Warning: failed to init evidence cache: %v (caching disabled)", err)
		} else {
			cache = redisCache
		}
	}

	searcher, err := search.NewSearcher(search.SearcherConfig{
		Backend: backend,
		Cache:   cache,
	})
	if err != nil {
		log.Printf("Warning: failed to init searcher: %v (originality checks disabled)", err)
		return nil
	}
	return searcher
}
