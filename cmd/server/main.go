package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"alexportfolio/auth"
	"alexportfolio/config"
	"alexportfolio/db"
	"alexportfolio/db/mongo"
	"alexportfolio/db/postgres"
	"alexportfolio/handlers"
	"alexportfolio/repository"
	"alexportfolio/routes"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Env)
	slog.SetDefault(logger)

	var store db.DB
	var userRepo repository.UserRepository
	var meetingRepo repository.MeetingRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL); err != nil {
			return err
		}
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			return fmt.Errorf("postgres connect: %w", err)
		}
		store = pg
		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		meetingRepo = repository.NewPostgresMeetingRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			return fmt.Errorf("mongo connect: %w", err)
		}
		store = mg
		userRepo = repository.NewMongoUserRepo(mg.Client)
		meetingRepo = repository.NewMongoMeetingRepo(mg.Client)

	default:
		return fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}
	defer store.Disconnect()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo, Tokens: tokens, Logger: logger}
	meetingHandler := &handlers.MeetingHandler{Repo: meetingRepo, Logger: logger}

	pdfRepo := repository.NewPDFRepository(meetingRepo, userRepo)
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo, SavePath: cfg.PDFSavePath, Logger: logger}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, tokens, userHandler, meetingHandler, pdfHandler, cfg.CORSOrigin)

	logger.Info("server listening", "port", cfg.Port, "db", cfg.DBType)
	return http.ListenAndServe(":"+cfg.Port, mux)
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case "development":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}
