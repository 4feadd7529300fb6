// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/models"
)

type serverRepository struct {
	*DB
	logger *logger.Logger
}

func NewServerRepository(db *DB, logger *logger.Logger) ServerRepository {
	return &serverRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *serverRepository) LoadAll(ctx context.Context) ([]models.StoredServer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllServersQuery()
	if err != nil {
		log.Err(err).Str("func", "serverRepository.LoadAll").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "serverRepository.LoadAll").Msg("failed to execute query for getting all servers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	servers := make([]models.StoredServer, 0)
	for rows.Next() {
		var s models.StoredServer
		if err = rows.Scan(&s.Label, &s.Host, &s.Account, &s.Secret); err != nil {
			log.Err(err).Str("func", "serverRepository.LoadAll").Msg("failed to scan server row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		servers = append(servers, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "serverRepository.LoadAll").Msg("error iterating server rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return servers, nil
}

func (r *serverRepository) GetByHost(ctx context.Context, host string) (models.StoredServer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectServerByHostQuery(host)
	if err != nil {
		log.Err(err).Str("func", "serverRepository.GetByHost").Msg("failed to build select query")
		return models.StoredServer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.StoredServer
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&s.Label, &s.Host, &s.Account, &s.Secret)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredServer{}, fmt.Errorf("%w: %q", ErrServerNotFound, host)
	}
	if err != nil {
		log.Err(err).Str("func", "serverRepository.GetByHost").Str("host", host).Msg("failed to get server")
		return models.StoredServer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *serverRepository) ReplaceAll(ctx context.Context, servers ...models.StoredServer) error {
	log := logger.FromContext(ctx)

	// collisions inside the incoming set never reach the database
	if err := findDuplicate(servers); err != nil {
		log.Debug().Str("func", "serverRepository.ReplaceAll").Err(err).Msg("incoming set violates uniqueness")
		return err
	}

	deleteQuery, deleteArgs, err := buildDeleteAllServersQuery()
	if err != nil {
		log.Err(err).Str("func", "serverRepository.ReplaceAll").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, _, err := buildInsertServerQuery(models.StoredServer{})
	if err != nil {
		log.Err(err).Str("func", "serverRepository.ReplaceAll").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "serverRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "serverRepository.ReplaceAll").Msg("failed to clear servers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		log.Err(err).Str("func", "serverRepository.ReplaceAll").Msg("failed to prepare insert statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for i, s := range servers {
		_, err = stmt.ExecContext(ctx, s.Label, s.Host, s.Account, string(s.Secret))
		if err != nil {
			log.Err(err).Str("func", "serverRepository.ReplaceAll").Int("index", i).Msg("failed to insert server")
			return r.insertError(err, i, s)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "serverRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "serverRepository.ReplaceAll").Int("count", len(servers)).Msg("server set replaced")
	return nil
}

func (r *serverRepository) DeleteByHosts(ctx context.Context, hosts ...string) error {
	log := logger.FromContext(ctx)

	if len(hosts) == 0 {
		return nil
	}

	query, args, err := buildDeleteServersByHostsQuery(hosts)
	if err != nil {
		log.Err(err).Str("func", "serverRepository.DeleteByHosts").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "serverRepository.DeleteByHosts").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "serverRepository.DeleteByHosts").Msg("failed to delete servers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "serverRepository.DeleteByHosts").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if affected, err := res.RowsAffected(); err == nil {
		log.Debug().Str("func", "serverRepository.DeleteByHosts").
			Int("requested", len(hosts)).Int64("deleted", affected).Msg("servers deleted")
	}
	return nil
}

// insertError turns a failed INSERT of row i into a structured error.
func (r *serverRepository) insertError(err error, i int, s models.StoredServer) error {
	switch r.errorClassifier.Classify(err) {
	case PrimaryKeyViolation:
		return &ConstraintViolationError{Field: FieldHost, Value: s.Host, Index: i, Err: err}
	case UniqueViolation:
		return &ConstraintViolationError{Field: FieldLabel, Value: s.Label, Index: i, Err: err}
	case EmptyValueViolation:
		return fmt.Errorf("%w (row %d): %w", ErrEmptyField, i, err)
	case OtherConstraintViolation:
		return &ConstraintViolationError{Field: FieldUnknown, Index: i, Err: err}
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// findDuplicate reports the first row whose host or label repeats an earlier
// row. Host is checked first.
func findDuplicate(servers []models.StoredServer) error {
	hosts := make(map[string]struct{}, len(servers))
	labels := make(map[string]struct{}, len(servers))

	for i, s := range servers {
		if _, ok := hosts[s.Host]; ok {
			return &ConstraintViolationError{Field: FieldHost, Value: s.Host, Index: i}
		}
		if _, ok := labels[s.Label]; ok {
			return &ConstraintViolationError{Field: FieldLabel, Value: s.Label, Index: i}
		}
		hosts[s.Host] = struct{}{}
		labels[s.Label] = struct{}{}
	}

	return nil
}
