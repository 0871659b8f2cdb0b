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

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository] working against the "categories" table.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory persists a single category and returns the stored row with
// server-assigned timestamps.
//
// A unique_violation on (user_id, name) maps to [ErrCategoryNameTaken].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCategory, category.CategoryID, category.UserID, category.Name, category.Icon, category.Color)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Category{}, ErrCategoryNameTaken
		default:
			return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanCategory(row, &category); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryNameTaken
		}
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error: scanning error")
		return models.Category{}, err
	}

	return category, nil
}

// CreateCategories persists two or more categories inside a single
// transaction using a prepared statement. Used when seeding the default
// category set for a freshly registered user.
//
// The transaction is rolled back automatically (via defer) if any individual
// insert fails; the commit is attempted only after all rows succeed.
func (r *categoryRepository) CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	if len(categories) == 0 {
		return nil, nil
	}
	if len(categories) == 1 {
		created, err := r.CreateCategory(ctx, categories[0])
		if err != nil {
			return nil, err
		}
		return []models.Category{created}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.CreateCategories").
			Int("count", len(categories)).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, createCategory)
	if err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.CreateCategories").
			Int("count", len(categories)).
			Msg("failed to prepare statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	created := make([]models.Category, 0, len(categories))

	for idx, category := range categories {
		log.Debug().
			Str("func", "*categoryRepository.CreateCategories").
			Int("iteration", idx+1).
			Int("total", len(categories)).
			Str("name", category.Name).
			Msg("saving category in transaction")

		row := stmt.QueryRowContext(ctx, category.CategoryID, category.UserID, category.Name, category.Icon, category.Color)
		if scanErr := scanCategory(row, &category); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*categoryRepository.CreateCategories").
				Int("iteration", idx+1).
				Str("name", category.Name).
				Msg("failed to execute prepared statement")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		created = append(created, category)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*categoryRepository.CreateCategories").
			Int("count", len(categories)).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return created, nil
}

// GetCategory retrieves a category by its identifier alone. Ownership of the
// returned row is verified by the caller.
func (r *categoryRepository) GetCategory(ctx context.Context, categoryID string) (models.Category, error) {
	log := logger.FromContext(ctx)

	var found models.Category
	row := r.db.QueryRowContext(ctx, getCategoryByID, categoryID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.GetCategory").
			Bool("retryable", r.db.retryable(err)).
			Msg("error: row is nil")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanCategory(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Msg("error: scanning error")
		return models.Category{}, err
	}

	return found, nil
}

// GetUserCategories returns every category owned by the given user ordered
// by creation time. An empty result is a valid outcome, not an error.
func (r *categoryRepository) GetUserCategories(ctx context.Context, userID string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getUserCategories, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.GetUserCategories").
			Str("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute query for getting user categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 8)

	for rows.Next() {
		var category models.Category

		if scanErr := rows.Scan(&category.CategoryID, &category.UserID, &category.Name, &category.Icon, &category.Color, &category.CreatedAt, &category.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*categoryRepository.GetUserCategories").
				Str("user_id", userID).
				Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*categoryRepository.GetUserCategories").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// UpdateCategory rewrites the mutable fields (name, icon, color) of the
// category owned by category.UserID and returns the stored row.
//
// Error handling:
//   - No matching row → [ErrCategoryNotFound].
//   - unique_violation on the new name → [ErrCategoryNameTaken].
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCategory, category.Name, category.Icon, category.Color, category.CategoryID, category.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Category{}, ErrCategoryNameTaken
		default:
			return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var updated models.Category
	if err := scanCategory(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryNameTaken
		}
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error: scanning error")
		return models.Category{}, err
	}

	return updated, nil
}

// DeleteCategory removes the category owned by userID. Credentials filed
// under it are removed by the ON DELETE CASCADE constraint.
//
// Returns [ErrCategoryNotFound] when no row matched.
func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCategory, categoryID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*categoryRepository.DeleteCategory").
			Str("category_id", categoryID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// scanCategory reads one category row in canonical column order.
func scanCategory(row *sql.Row, dst *models.Category) error {
	return row.Scan(&dst.CategoryID, &dst.UserID, &dst.Name, &dst.Icon, &dst.Color, &dst.CreatedAt, &dst.UpdatedAt)
}
