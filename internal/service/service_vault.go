// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-server-vault/internal/crypto"
	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/internal/store"
	"github.com/MKhiriev/go-server-vault/internal/utils"
	"github.com/MKhiriev/go-server-vault/internal/validators"
	"github.com/MKhiriev/go-server-vault/models"
)

type vaultService struct {
	repository store.ServerRepository
	cipher     crypto.Cipher
	key        *crypto.KeyMaterial
	validator  validators.Validator
	ids        IDGenerator

	logger *logger.Logger
}

// NewVaultService builds a [VaultService] sealing secrets with cipher under
// key. The key is kept for the lifetime of the service and never leaves it.
func NewVaultService(
	repository store.ServerRepository,
	cipher crypto.Cipher,
	key *crypto.KeyMaterial,
	validator validators.Validator,
	ids IDGenerator,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		repository: repository,
		cipher:     cipher,
		key:        key,
		validator:  validator,
		ids:        ids,
		logger:     logger,
	}
}

func (v *vaultService) Load(ctx context.Context) ([]models.Server, error) {
	ctx, log := v.startOperation(ctx, "load")

	stored, err := v.repository.LoadAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Load").Msg("failed to load servers")
		return nil, fmt.Errorf("load servers: %w", err)
	}

	servers := make([]models.Server, 0, len(stored))
	for i, s := range stored {
		secret, err := v.cipher.Open(v.key, s.Secret)
		if err != nil {
			log.Error().Str("func", "vaultService.Load").Int("index", i).Msg("failed to open stored secret")
			return nil, fmt.Errorf("%w: record %d: %w", ErrVaultUnreadable, i, err)
		}
		servers = append(servers, models.Server{
			Label:   s.Label,
			Host:    s.Host,
			Account: s.Account,
			Secret:  secret,
		})
	}

	log.Debug().Str("func", "vaultService.Load").Int("count", len(servers)).Msg("servers loaded")
	return servers, nil
}

func (v *vaultService) Save(ctx context.Context, servers []models.Server) error {
	ctx, log := v.startOperation(ctx, "save")

	normalized := make([]models.Server, 0, len(servers))
	for _, s := range servers {
		normalized = append(normalized, normalizeServer(s))
	}

	if err := v.validator.Validate(ctx, normalized); err != nil {
		var re *validators.RecordError
		if errors.As(err, &re) {
			log.Debug().Str("func", "vaultService.Save").Int("index", re.Index).Str("field", re.Field).Msg("invalid server")
			return &InvalidInputError{Index: re.Index, Field: re.Field, Err: err}
		}
		return fmt.Errorf("validate servers: %w", err)
	}

	stored := make([]models.StoredServer, 0, len(normalized))
	for i, s := range normalized {
		secret, err := v.cipher.Seal(v.key, s.Secret)
		if err != nil {
			log.Err(err).Str("func", "vaultService.Save").Int("index", i).Msg("failed to seal secret")
			return fmt.Errorf("seal secret of record %d: %w", i, err)
		}
		stored = append(stored, models.StoredServer{
			Label:   s.Label,
			Host:    s.Host,
			Account: s.Account,
			Secret:  secret,
		})
	}

	if err := v.repository.ReplaceAll(ctx, stored...); err != nil {
		log.Err(err).Str("func", "vaultService.Save").Msg("failed to replace servers")
		return mapStoreSaveError(err)
	}

	log.Debug().Str("func", "vaultService.Save").Int("count", len(stored)).Msg("servers saved")
	return nil
}

func (v *vaultService) Delete(ctx context.Context, hosts []string) error {
	ctx, log := v.startOperation(ctx, "delete")

	normalized := make([]string, 0, len(hosts))
	for _, h := range hosts {
		normalized = append(normalized, normalizeKey(h))
	}

	if err := v.repository.DeleteByHosts(ctx, normalized...); err != nil {
		log.Err(err).Str("func", "vaultService.Delete").Msg("failed to delete servers")
		return fmt.Errorf("delete servers: %w", err)
	}

	return nil
}

func (v *vaultService) Get(ctx context.Context, host string) (models.Server, error) {
	ctx, log := v.startOperation(ctx, "get")

	host = normalizeKey(host)
	s, err := v.repository.GetByHost(ctx, host)
	if errors.Is(err, store.ErrServerNotFound) {
		return models.Server{}, &NotFoundError{Host: host, Err: err}
	}
	if err != nil {
		log.Err(err).Str("func", "vaultService.Get").Str("host", host).Msg("failed to get server")
		return models.Server{}, fmt.Errorf("get server: %w", err)
	}

	secret, err := v.cipher.Open(v.key, s.Secret)
	if err != nil {
		log.Error().Str("func", "vaultService.Get").Str("host", host).Msg("failed to open stored secret")
		return models.Server{}, fmt.Errorf("%w: %w", ErrVaultUnreadable, err)
	}

	return models.Server{Label: s.Label, Host: s.Host, Account: s.Account, Secret: secret}, nil
}

// startOperation tags ctx and a child logger with a fresh operation id.
func (v *vaultService) startOperation(ctx context.Context, op string) (context.Context, *logger.Logger) {
	opID := v.ids.Generate()

	child := v.logger.GetChildLogger()
	child.Logger = child.With().Str("op", op).Str("op_id", opID).Logger()

	ctx = utils.WithOperationID(ctx, opID)
	return child.WithContext(ctx), child
}
