package store

import "github.com/securevault/go-secure-vault/internal/logger"

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository       UserRepository
	CategoryRepository   CategoryRepository
	CredentialRepository CredentialRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CategoryRepository:   NewCategoryRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
	}
}
