package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/leetcoach/client/conf"
	"github.com/leetcoach/client/logger"
	"github.com/leetcoach/client/mockapi"
)

func main() {
	cfg, err := conf.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.MockApiAddr, "listen address")
	flag.Parse()

	log := logger.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(log)

	opts := mockapi.DefaultRouterOptions()
	opts.LogLevel = logger.ParseLevel(cfg.LogLevel)
	router := mockapi.NewRouter(mockapi.NewSampleBackend(), opts)

	log.Info("starting mock api", "address", *addr)
	err = http.ListenAndServe(*addr, router)
	log.Error("mock api stopped", "error", err)
	os.Exit(1)
}
