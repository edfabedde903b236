package main

import (
	"context"
	"kiisuite/app/config"
	"kiisuite/app/service/assistant"
	"kiisuite/app/service/extract"
	"kiisuite/app/service/forms"
	"kiisuite/app/service/queue"
	"kiisuite/app/tui"
	"kiisuite/app/util/mylog"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, extract.New)
	do.Provide(di, forms.New)
	do.Provide(di, queue.New)
	do.Provide(di, assistant.New)
	do.Provide(di, tui.NewApp)

	slog.Info("Kii started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	program := tea.NewProgram(do.MustInvoke[*tui.App](di), tea.WithAltScreen(), tea.WithContext(appCtx))
	if _, err := program.Run(); err != nil {
		log.Fatalf("ui failed: %v", err)
	}

	cancel()
}
