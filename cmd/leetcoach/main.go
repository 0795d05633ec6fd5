package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leetcoach/client/catalog"
	"github.com/leetcoach/client/chat"
	"github.com/leetcoach/client/conf"
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/gate"
	"github.com/leetcoach/client/gateway"
	"github.com/leetcoach/client/judge"
	"github.com/leetcoach/client/logger"
	"github.com/leetcoach/client/session"
)

func main() {
	cfg, err := conf.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log := logger.New(logFile, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), log))
	defer cancel()

	lang, _ := domain.ParseLanguage(cfg.DefaultLanguage)
	client := gateway.NewClient(cfg.ApiURL, cfg.RequestTimeout)
	store := session.NewStore(lang)

	a := &app{
		ctx:       ctx,
		store:     store,
		orch:      judge.NewOrchestrator(store, client),
		relay:     chat.NewRelay(store, client),
		catalog:   catalog.New(client),
		solutions: gate.NewLoader(client),
		feedback:  client,
	}

	log.Info("starting leetcoach", "api_url", cfg.ApiURL, "language", lang)

	p := tea.NewProgram(newModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", "error", err)
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
