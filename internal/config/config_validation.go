// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.AccessTokenSignKey == "" || cfg.Auth.RefreshTokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	// Using one key for both token families collapses the two trust
	// domains; a leaked access key would then mint refresh tokens.
	if cfg.Auth.AccessTokenSignKey == cfg.Auth.RefreshTokenSignKey {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenDuration == 0 || cfg.Auth.RefreshTokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Blob.Bucket == "" || cfg.Storage.Blob.Region == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
