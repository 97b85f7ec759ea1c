package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/assettrack/asset-track-api/internal/config"
	"github.com/assettrack/asset-track-api/internal/logging"
	"github.com/assettrack/asset-track-api/internal/media"
	"github.com/assettrack/asset-track-api/internal/repository/postgres"
	"github.com/assettrack/asset-track-api/internal/service"
	transport "github.com/assettrack/asset-track-api/internal/transport/http"
	"github.com/assettrack/asset-track-api/internal/transport/mail"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	if cfg.SeedDefaultUsers {
		seeds := []struct {
			username, password, role string
		}{
			{"admin", cfg.SeedAdminPassword, "admin"},
			{"user1", cfg.SeedUser1Password, "user"},
			{"user2", cfg.SeedUser2Password, "user"},
		}
		for _, seed := range seeds {
			if err := postgres.SeedUser(ctx, db, seed.username, seed.password, seed.role); err != nil {
				log.Fatalf("seed user %s: %v", seed.username, err)
			}
		}
		log.Println("default users seeded")
	}

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	resetRepo := postgres.NewPasswordResetRepo(db)
	assetRepo := postgres.NewAssetRepo(db)

	mailer := mail.NewPasswordResetMailer(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
		cfg.SMTPFrom, cfg.ResetMailTo, cfg.FrontendBaseURL,
	)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.SessionTTL)
	resetService := service.NewPasswordResetService(userRepo, resetRepo, mailer, cfg.ResetTokenTTL, cfg.MailTimeout)
	assetService := service.NewAssetService(assetRepo, media.NewGenerator())
	historyService := service.NewHistoryService(assetRepo)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAuth(e, authService, resetService)
	transport.RegisterAssets(e, authService, assetService)
	transport.RegisterHistory(e, authService, historyService)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
