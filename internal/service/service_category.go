package service

import (
	"context"
	"fmt"

	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/store"
	"github.com/securevault/go-secure-vault/internal/utils"
	"github.com/securevault/go-secure-vault/internal/validators"
	"github.com/securevault/go-secure-vault/models"
)

// categoryService is the concrete implementation of CategoryService.
// Mutating operations fetch the target record by identifier, pass it through
// the ownership guard and only then touch storage; a failed guard collapses
// into store.ErrCategoryNotFound.
type categoryService struct {
	categoryRepository store.CategoryRepository
	guard              *OwnershipGuard
	validator          validators.Validator
	uuidGenerator      *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewCategoryService constructs a CategoryService wired to the given
// repository and ownership guard.
func NewCategoryService(categoryRepository store.CategoryRepository, guard *OwnershipGuard, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		guard:              guard,
		validator:          validators.NewVaultInputValidator(),
		uuidGenerator:      utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// CreateCategory validates the input and persists a new category owned by
// requesterID.
//
// Returns:
//   - A validation sentinel (ErrValidationEmptyCategoryName and friends) on
//     bad input.
//   - store.ErrCategoryNameTaken when the owner already has a category with
//     the same name.
func (s *categoryService) CreateCategory(ctx context.Context, requesterID string, input models.CategoryInput) (models.Category, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("name", input.Name).Msg("invalid category input")
		return models.Category{}, err
	}

	category := models.Category{
		CategoryID: s.uuidGenerator.Generate(),
		UserID:     requesterID,
		Name:       input.Name,
		Icon:       input.Icon,
		Color:      input.Color,
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", input.Name).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

// ListCategories returns every category owned by requesterID.
func (s *categoryService) ListCategories(ctx context.Context, requesterID string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	categories, err := s.categoryRepository.GetUserCategories(ctx, requesterID)
	if err != nil {
		log.Err(err).Str("user_id", requesterID).Msg("listing categories ended with error")
		return nil, fmt.Errorf("listing categories ended with error: %w", err)
	}

	return categories, nil
}

// UpdateCategory rewrites the name, icon and color of an owned category.
//
// A category owned by someone else is reported as store.ErrCategoryNotFound,
// identical to a missing one.
func (s *categoryService) UpdateCategory(ctx context.Context, requesterID, categoryID string, input models.CategoryInput) (models.Category, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("category_id", categoryID).Msg("invalid category input")
		return models.Category{}, err
	}

	current, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("category lookup ended with error: %w", err)
	}

	if err := s.guard.Authorize(requesterID, current.UserID); err != nil {
		return models.Category{}, store.ErrCategoryNotFound
	}

	current.Name = input.Name
	current.Icon = input.Icon
	current.Color = input.Color

	updated, err := s.categoryRepository.UpdateCategory(ctx, current)
	if err != nil {
		log.Err(err).Str("category_id", categoryID).Msg("category update ended with error")
		return models.Category{}, fmt.Errorf("category update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes an owned category. Credentials filed under it are
// removed with it by the database cascade.
//
// A category owned by someone else is reported as store.ErrCategoryNotFound.
func (s *categoryService) DeleteCategory(ctx context.Context, requesterID, categoryID string) error {
	log := logger.FromContext(ctx)

	current, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("category lookup ended with error: %w", err)
	}

	if err := s.guard.Authorize(requesterID, current.UserID); err != nil {
		return store.ErrCategoryNotFound
	}

	if err := s.categoryRepository.DeleteCategory(ctx, categoryID, requesterID); err != nil {
		log.Err(err).Str("category_id", categoryID).Msg("category deletion ended with error")
		return fmt.Errorf("category deletion ended with error: %w", err)
	}

	log.Info().
		Str("category_id", categoryID).
		Str("user_id", requesterID).
		Msg("category deleted")

	return nil
}
