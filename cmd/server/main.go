package main

import (
	"context"
	"fmt"

	"github.com/securevault/go-secure-vault/internal/config"
	"github.com/securevault/go-secure-vault/internal/crypto"
	httpHandler "github.com/securevault/go-secure-vault/internal/handler/http"
	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/server"
	"github.com/securevault/go-secure-vault/internal/service"
	"github.com/securevault/go-secure-vault/internal/store"
	"github.com/securevault/go-secure-vault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("secure-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// The key is derived before anything touches the network: a vault that
	// cannot seal envelopes must not start.
	key, err := crypto.DeriveKey(cfg.App.EncryptionSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving encryption key")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, crypto.NewEnvelopeCodec(key), cfg, log)
	handler := httpHandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
