package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pointofsale/api"
	"pointofsale/cmd"
	httpadapter "pointofsale/internal/adapters/in/http"
	"pointofsale/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := postgres.Open(config.DSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer func() {
		_ = postgres.Close(db)
	}()

	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(config, db, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, config.HTTPPort, logger)
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := api.Load()
	if err != nil {
		log.Fatalf("Error loading API contract: %v", err)
	}
	if err = api.RegisterSwagger(doc); err != nil {
		log.Fatalf("Error registering API docs: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateStartCobblerCommandHandler(),
		app.CreateChooseFruitFillingCommandHandler(),
		app.CreateServeWithIceCreamCommandHandler(),
		app.CreateGetCobblerQueryHandler(),
		app.CreateGetAllCobblersQueryHandler(),
	)

	e, err := httpadapter.NewEcho(server, doc, logger)
	if err != nil {
		log.Fatalf("Error creating HTTP server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
