package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. It executes all credential CRUD operations against
// the "credentials" table and never looks inside the encrypted payload: the
// envelope travels through this layer as an opaque string column.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, credential_id, etc.).
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCredential persists a new credential and returns the stored row with
// server-assigned timestamps. The envelope must already be sealed; this
// method stores whatever opaque string it receives.
//
// A foreign_key_violation on category_id maps to [ErrCategoryNotFound].
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential,
		credential.CredentialID,
		credential.UserID,
		credential.CategoryID,
		credential.Title,
		credential.Description,
		credential.Website,
		credential.Username,
		credential.CustomerID,
		credential.Notes,
		string(credential.EncryptedData),
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Credential{}, ErrCategoryNotFound
		default:
			return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.Credential
	if err := scanCredentialRow(row, &created); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Credential{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error: scanning error")
		return models.Credential{}, err
	}

	return created, nil
}

// GetCredential retrieves a credential by its identifier alone. Ownership of
// the returned row is verified by the caller.
//
// Returns [ErrCredentialNotFound] when no row matches.
func (r *credentialRepository) GetCredential(ctx context.Context, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var found models.Credential
	row := r.db.QueryRowContext(ctx, getCredentialByID, credentialID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.GetCredential").
			Bool("retryable", r.db.retryable(err)).
			Msg("error: row is nil")
		return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanCredentialRow(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error: scanning error")
		return models.Credential{}, err
	}

	return found, nil
}

// GetUserCredentials returns every credential owned by userID, ordered by title.
// A non-nil categoryID narrows the listing to one category. An empty result
// is a valid outcome, not an error.
func (r *credentialRepository) GetUserCredentials(ctx context.Context, userID string, categoryID *string) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery(userID, categoryID)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.GetUserCredentials").
			Str("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.GetUserCredentials").
			Str("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute query for getting user credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0, 50)

	for rows.Next() {
		var credential models.Credential

		if scanErr := scanCredentialRows(rows, &credential); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*credentialRepository.GetUserCredentials").
				Str("user_id", userID).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		credentials = append(credentials, credential)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*credentialRepository.GetUserCredentials").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return credentials, nil
}

// UpdateCredential applies a partial update to the credential owned by
// userID and returns the stored row. Only the non-nil fields of update
// produce SET clauses; a non-nil envelope replaces the encrypted payload.
//
// Error handling:
//   - No matching row → [ErrCredentialNotFound].
//   - foreign_key_violation on a new category_id → [ErrCategoryNotFound].
func (r *credentialRepository) UpdateCredential(ctx context.Context, credentialID, userID string, update models.CredentialUpdate, encrypted *models.Envelope) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCredentialQuery(credentialID, userID, update, encrypted)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.UpdateCredential").
			Str("credential_id", credentialID).
			Msg("failed to build update query")
		return models.Credential{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Credential{}, ErrCategoryNotFound
		default:
			return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var updated models.Credential
	if err := scanCredentialRow(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Credential{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error: scanning error")
		return models.Credential{}, err
	}

	return updated, nil
}

// DeleteCredential removes the credential owned by userID.
// Returns [ErrCredentialNotFound] when no row matched.
func (r *credentialRepository) DeleteCredential(ctx context.Context, credentialID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCredential, credentialID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*credentialRepository.DeleteCredential").
			Str("credential_id", credentialID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// scanCredentialRow reads one credential from a single-row result in
// [credentialColumns] order.
func scanCredentialRow(row *sql.Row, dst *models.Credential) error {
	return row.Scan(
		&dst.CredentialID,
		&dst.UserID,
		&dst.CategoryID,
		&dst.Title,
		&dst.Description,
		&dst.Website,
		&dst.Username,
		&dst.CustomerID,
		&dst.Notes,
		&dst.EncryptedData,
		&dst.CreatedAt,
		&dst.UpdatedAt,
	)
}

// scanCredentialRows is the multi-row counterpart of [scanCredentialRow].
func scanCredentialRows(rows *sql.Rows, dst *models.Credential) error {
	return rows.Scan(
		&dst.CredentialID,
		&dst.UserID,
		&dst.CategoryID,
		&dst.Title,
		&dst.Description,
		&dst.Website,
		&dst.Username,
		&dst.CustomerID,
		&dst.Notes,
		&dst.EncryptedData,
		&dst.CreatedAt,
		&dst.UpdatedAt,
	)
}
