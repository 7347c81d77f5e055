package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/echoslice/internal/config"
	"github.com/example/echoslice/internal/database"
	"github.com/example/echoslice/internal/excel"
	"github.com/example/echoslice/internal/handlers"
	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/internal/notify"
	"github.com/example/echoslice/internal/queue"
	"github.com/example/echoslice/internal/scheduler"
	"github.com/example/echoslice/internal/server"
)

func main() {
	importFile := flag.String("import-clips", "", "import clips from an .xlsx or .csv file and exit")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	driver, dsn := cfg.Driver()
	store, err := database.Open(driver, dsn)
	if err != nil {
		log.Fatalw("failed to open database", "error", err)
	}
	defer store.Close()

	if *importFile != "" {
		runImport(log, store, *importFile)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	service := queue.NewService(store, rng, log, queue.Config{
		Limit:        cfg.QueueLimit,
		ReviewTarget: cfg.QueueReviewTarget,
	}, nil)

	var notifier scheduler.Notifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalw("failed to create telegram notifier", "error", err)
		}
		notifier = tg
	}

	sched := scheduler.New(service, notifier, log)
	sched.Start()
	defer sched.Stop()

	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.RouterConfig{
		Health:  handlers.NewHealthHandler(store),
		Clips:   handlers.NewClipHandler(store, log),
		Queue:   handlers.NewQueueHandler(service, log),
		Reviews: handlers.NewReviewHandler(service, log),
		Logger:  log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infow("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server error", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("error during shutdown", "error", err)
	}
}

func runImport(log *logger.Logger, store *database.Store, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := excel.ImportClips(ctx, store, excel.DefaultImportConfig(path))
	if err != nil {
		log.Fatalw("import failed", "error", err)
	}
	log.Infow("import finished",
		"processed", result.TotalProcessed,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	for _, e := range result.Errors {
		log.Warnw("import row error", "detail", e)
	}
}
