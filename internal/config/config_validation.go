package config

// minEncryptionSecretLength matches the crypto package's key-derivation
// requirement; validated here so the process refuses to start rather than
// failing on the first encrypt call.
const minEncryptionSecretLength = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.EncryptionSecret) < minEncryptionSecretLength {
		return ErrWeakEncryptionSecret
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
