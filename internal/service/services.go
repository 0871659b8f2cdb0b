package service

import (
	"github.com/securevault/go-secure-vault/internal/config"
	"github.com/securevault/go-secure-vault/internal/crypto"
	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/store"
)

type Services struct {
	AuthService       AuthService
	CategoryService   CategoryService
	CredentialService CredentialService
}

func NewServices(storages *store.Storages, codec crypto.EnvelopeCodec, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	guard := NewOwnershipGuard(logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.CategoryRepository, cfg.App, logger),
		CategoryService:   NewCategoryService(storages.CategoryRepository, guard, logger),
		CredentialService: NewCredentialService(storages.CredentialRepository, storages.CategoryRepository, codec, guard, logger),
	}
}
