package main

import (
	"github.com/sirupsen/logrus"

	"github.com/keyword-engine/backend/internal/api"
	"github.com/keyword-engine/backend/internal/config"
	"github.com/keyword-engine/backend/internal/engine"
	"github.com/keyword-engine/backend/internal/executor"
	"github.com/keyword-engine/backend/internal/loader"
	"github.com/keyword-engine/backend/internal/search"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "keyword-engine-api")

	entry.Info("Starting Keyword Engine API Service")

	// 1. Config
	cfg := config.Load()

	// 2. Keyword vocabulary
	keywords, err := cfg.LoadKeywords(search.DefaultKeywords)
	if err != nil {
		entry.Fatalf("Failed to load keyword vocabulary: %v", err)
	}
	entry.Infof("Loaded %d keywords", len(keywords))

	// 3. Executor
	pool := executor.NewPool(cfg.Executor.Workers, cfg.Executor.QueueSize, cfg.Executor.StopTimeout, entry)
	if err := pool.Start(); err != nil {
		entry.Fatalf("Failed to start executor: %v", err)
	}
	defer pool.Stop()

	// 4. Engine
	matcher := search.NewMatcher(keywords)
	eng := engine.NewEngine(matcher, pool, entry)

	// 5. Document loader
	ldr := loader.NewLoader(cfg.Loader, entry)

	// 6. API Server
	server := api.NewServer(eng, ldr, pool, entry)

	entry.Infof("Keyword Engine API ready on %s", cfg.Server.Addr)
	if err := server.Start(cfg.Server.Addr); err != nil {
		entry.Fatal(err)
	}
}
