package service

import (
	"context"
	"fmt"

	"github.com/securevault/go-secure-vault/internal/crypto"
	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/store"
	"github.com/securevault/go-secure-vault/internal/utils"
	"github.com/securevault/go-secure-vault/internal/validators"
	"github.com/securevault/go-secure-vault/models"
)

// credentialService is the concrete implementation of CredentialService.
// It is the only layer that touches the envelope codec: repositories below
// see opaque envelope strings, handlers above see decrypted structures.
//
// Every read passes the stored record through the ownership guard before
// the codec is invoked; a record that fails the guard is reported as
// store.ErrCredentialNotFound and its payload is never decrypted.
type credentialService struct {
	credentialRepository store.CredentialRepository
	categoryRepository   store.CategoryRepository
	codec                crypto.EnvelopeCodec
	guard                *OwnershipGuard
	validator            validators.Validator
	uuidGenerator        *utils.UUIDGenerator
	logger               *logger.Logger
}

// NewCredentialService constructs a CredentialService wired to the given
// repositories, envelope codec and ownership guard.
func NewCredentialService(
	credentialRepository store.CredentialRepository,
	categoryRepository store.CategoryRepository,
	codec crypto.EnvelopeCodec,
	guard *OwnershipGuard,
	logger *logger.Logger,
) CredentialService {
	return &credentialService{
		credentialRepository: credentialRepository,
		categoryRepository:   categoryRepository,
		codec:                codec,
		guard:                guard,
		validator:            validators.NewVaultInputValidator(),
		uuidGenerator:        utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// CreateCredential seals the sensitive payload and persists a new credential
// owned by requesterID.
//
// The target category must exist and belong to the requester; a foreign
// category is reported as store.ErrCategoryNotFound, identical to a missing
// one.
func (s *credentialService) CreateCredential(ctx context.Context, requesterID string, input models.CredentialInput) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("title", input.Title).Msg("invalid credential input")
		return models.Credential{}, err
	}

	if err := s.authorizeCategory(ctx, requesterID, input.CategoryID); err != nil {
		return models.Credential{}, err
	}

	envelope, err := s.codec.Encode(input.SensitiveData)
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("sealing sensitive data failed")
		return models.Credential{}, fmt.Errorf("sealing sensitive data failed: %w", err)
	}

	credential := models.Credential{
		CredentialID:  s.uuidGenerator.Generate(),
		UserID:        requesterID,
		CategoryID:    input.CategoryID,
		Title:         input.Title,
		Description:   input.Description,
		Website:       input.Website,
		Username:      input.Username,
		CustomerID:    input.CustomerID,
		Notes:         input.Notes,
		EncryptedData: envelope,
	}

	created, err := s.credentialRepository.CreateCredential(ctx, credential)
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("credential creation ended with error")
		return models.Credential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	// the caller already holds the plain payload; no need to round-trip
	// through the codec
	created.SensitiveData = input.SensitiveData

	return created, nil
}

// GetCredential returns a single owned credential with its sensitive payload
// decrypted.
//
// A credential owned by someone else is reported as
// store.ErrCredentialNotFound before any decryption happens. A failed
// decryption of a single requested record is an error, not a degraded
// result.
func (s *credentialService) GetCredential(ctx context.Context, requesterID, credentialID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := s.credentialRepository.GetCredential(ctx, credentialID)
	if err != nil {
		return models.Credential{}, fmt.Errorf("credential lookup ended with error: %w", err)
	}

	if err := s.guard.Authorize(requesterID, credential.UserID); err != nil {
		return models.Credential{}, store.ErrCredentialNotFound
	}

	sensitive, err := s.codec.Decode(credential.EncryptedData)
	if err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("opening sensitive data failed")
		return models.Credential{}, fmt.Errorf("opening sensitive data failed: %w", err)
	}
	credential.SensitiveData = sensitive

	return credential, nil
}

// ListCredentials returns the requester's credentials, optionally narrowed
// to one category, with sensitive payloads decrypted.
//
// A record whose envelope cannot be opened does not fail the listing: it is
// returned with an empty SensitiveData and a warning is logged, so one
// corrupt row never hides the rest of the vault.
func (s *credentialService) ListCredentials(ctx context.Context, requesterID string, categoryID *string) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	credentials, err := s.credentialRepository.GetUserCredentials(ctx, requesterID, categoryID)
	if err != nil {
		log.Err(err).Str("user_id", requesterID).Msg("listing credentials ended with error")
		return nil, fmt.Errorf("listing credentials ended with error: %w", err)
	}

	for i := range credentials {
		sensitive, decodeErr := s.codec.Decode(credentials[i].EncryptedData)
		if decodeErr != nil {
			log.Warn().
				Err(decodeErr).
				Str("credential_id", credentials[i].CredentialID).
				Msg("failed to open credential envelope, returning record without sensitive data")
			credentials[i].SensitiveData = models.SecretFields{}
			continue
		}
		credentials[i].SensitiveData = sensitive
	}

	return credentials, nil
}

// UpdateCredential applies a partial update to an owned credential.
//
// Ownership is checked first; a foreign credential is reported as
// store.ErrCredentialNotFound. When the update moves the credential to a
// different category, the new category must also resolve under the ownership
// guard for the same requester.
//
// Sensitive fields are never patched in place: when update.SensitiveData is
// present, the stored envelope is opened, the supplied fields are merged
// into the full payload, and the whole object is re-sealed as one new
// envelope.
func (s *credentialService) UpdateCredential(ctx context.Context, requesterID, credentialID string, update models.CredentialUpdate) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if update.Title != nil && *update.Title == "" {
		return models.Credential{}, ErrValidationEmptyTitle
	}

	current, err := s.credentialRepository.GetCredential(ctx, credentialID)
	if err != nil {
		return models.Credential{}, fmt.Errorf("credential lookup ended with error: %w", err)
	}

	if err := s.guard.Authorize(requesterID, current.UserID); err != nil {
		return models.Credential{}, store.ErrCredentialNotFound
	}

	if update.CategoryID != nil && *update.CategoryID != current.CategoryID {
		if err := s.authorizeCategory(ctx, requesterID, *update.CategoryID); err != nil {
			return models.Credential{}, err
		}
	}

	var envelope *models.Envelope
	if update.SensitiveData != nil {
		stored, decodeErr := s.codec.Decode(current.EncryptedData)
		if decodeErr != nil {
			log.Err(decodeErr).Str("credential_id", credentialID).Msg("opening sensitive data failed")
			return models.Credential{}, fmt.Errorf("opening sensitive data failed: %w", decodeErr)
		}

		merged := mergeSecretFields(stored, *update.SensitiveData)
		sealed, encodeErr := s.codec.Encode(merged)
		if encodeErr != nil {
			log.Err(encodeErr).Str("credential_id", credentialID).Msg("sealing sensitive data failed")
			return models.Credential{}, fmt.Errorf("sealing sensitive data failed: %w", encodeErr)
		}
		envelope = &sealed
	}

	updated, err := s.credentialRepository.UpdateCredential(ctx, credentialID, requesterID, update, envelope)
	if err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("credential update ended with error")
		return models.Credential{}, fmt.Errorf("credential update ended with error: %w", err)
	}

	sensitive, err := s.codec.Decode(updated.EncryptedData)
	if err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("opening sensitive data failed")
		return models.Credential{}, fmt.Errorf("opening sensitive data failed: %w", err)
	}
	updated.SensitiveData = sensitive

	return updated, nil
}

// DeleteCredential removes an owned credential. A foreign credential is
// reported as store.ErrCredentialNotFound.
func (s *credentialService) DeleteCredential(ctx context.Context, requesterID, credentialID string) error {
	log := logger.FromContext(ctx)

	current, err := s.credentialRepository.GetCredential(ctx, credentialID)
	if err != nil {
		return fmt.Errorf("credential lookup ended with error: %w", err)
	}

	if err := s.guard.Authorize(requesterID, current.UserID); err != nil {
		return store.ErrCredentialNotFound
	}

	if err := s.credentialRepository.DeleteCredential(ctx, credentialID, requesterID); err != nil {
		log.Err(err).Str("credential_id", credentialID).Msg("credential deletion ended with error")
		return fmt.Errorf("credential deletion ended with error: %w", err)
	}

	log.Info().
		Str("credential_id", credentialID).
		Str("user_id", requesterID).
		Msg("credential deleted")

	return nil
}

// authorizeCategory resolves a category and checks it belongs to the
// requester. Both "missing" and "owned by someone else" come back as
// store.ErrCategoryNotFound.
func (s *credentialService) authorizeCategory(ctx context.Context, requesterID, categoryID string) error {
	category, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("category lookup ended with error: %w", err)
	}

	if err := s.guard.Authorize(requesterID, category.UserID); err != nil {
		return store.ErrCategoryNotFound
	}

	return nil
}

// mergeSecretFields overlays the supplied fields onto the stored payload.
// A non-empty supplied string replaces the stored value, an empty one keeps
// it. A non-nil CustomFields slice replaces the stored list wholesale, order
// included.
func mergeSecretFields(stored, supplied models.SecretFields) models.SecretFields {
	merged := stored

	if supplied.LoginPassword != "" {
		merged.LoginPassword = supplied.LoginPassword
	}
	if supplied.TransactionPassword != "" {
		merged.TransactionPassword = supplied.TransactionPassword
	}
	if supplied.SMSPassword != "" {
		merged.SMSPassword = supplied.SMSPassword
	}
	if supplied.PIN != "" {
		merged.PIN = supplied.PIN
	}
	if supplied.ATMPin != "" {
		merged.ATMPin = supplied.ATMPin
	}
	if supplied.UPIPin != "" {
		merged.UPIPin = supplied.UPIPin
	}
	if supplied.MPIN != "" {
		merged.MPIN = supplied.MPIN
	}
	if supplied.SecretQuestion != "" {
		merged.SecretQuestion = supplied.SecretQuestion
	}
	if supplied.SecretAnswer != "" {
		merged.SecretAnswer = supplied.SecretAnswer
	}
	if supplied.CustomFields != nil {
		merged.CustomFields = supplied.CustomFields
	}

	return merged
}
