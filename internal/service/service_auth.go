package service

import (
	"context"
	"fmt"
	"time"

	"github.com/securevault/go-secure-vault/internal/config"
	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/store"
	"github.com/securevault/go-secure-vault/internal/utils"
	"github.com/securevault/go-secure-vault/internal/validators"
	"github.com/securevault/go-secure-vault/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately above the library default. Login is a rare
// operation compared to vault reads, so the extra hashing time is acceptable.
const bcryptCost = 12

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// categoryRepository seeds the starter category set for new accounts.
	categoryRepository store.CategoryRepository

	// validator checks registration and login input before any hashing work.
	validator validators.Validator

	// uuidGenerator assigns identifiers to users and seeded categories.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, categoryRepository store.CategoryRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		categoryRepository: categoryRepository,
		validator:          validators.NewVaultInputValidator(),
		uuidGenerator:      utils.NewUUIDGenerator(),
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		logger:             logger,
	}
}

// RegisterUser creates a new user account and seeds it with the default
// category set.
//
// The plain-text password is bcrypt-hashed before it reaches the repository
// and is never logged.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("email", input.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.uuidGenerator.Generate(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err := a.seedDefaultCategories(ctx, registeredUser.UserID); err != nil {
		log.Err(err).Str("user_id", registeredUser.UserID).Msg("seeding default categories failed")
		return models.User{}, fmt.Errorf("seeding default categories failed: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found, see store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("email", input.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, input.Email)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(input.Password)); err != nil {
		log.Warn().
			Str("user_id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// seedDefaultCategories assigns identifiers to the starter category set and
// persists it in a single batch.
func (a *authService) seedDefaultCategories(ctx context.Context, userID string) error {
	categories := models.DefaultCategories(userID)
	for i := range categories {
		categories[i].CategoryID = a.uuidGenerator.Generate()
	}

	_, err := a.categoryRepository.CreateCategories(ctx, categories)
	return err
}
