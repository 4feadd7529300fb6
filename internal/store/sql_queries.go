// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-server-vault/models"
)

var (
	serversTable   = models.StoredServer{}.TableName()
	serversColumns = []string{"label", "host", "account", "secret"}

	// sqlite uses ? placeholders
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// buildSelectAllServersQuery selects the whole set in insertion order.
func buildSelectAllServersQuery() (string, []any, error) {
	return psql.
		Select(serversColumns...).
		From(serversTable).
		OrderBy("rowid").
		ToSql()
}

func buildSelectServerByHostQuery(host string) (string, []any, error) {
	return psql.
		Select(serversColumns...).
		From(serversTable).
		Where(sq.Eq{"host": host}).
		ToSql()
}

func buildDeleteAllServersQuery() (string, []any, error) {
	return psql.Delete(serversTable).ToSql()
}

// buildInsertServerQuery returns the single-row INSERT. The SQL text does not
// depend on the row, so it can be prepared once and executed per row.
func buildInsertServerQuery(s models.StoredServer) (string, []any, error) {
	return psql.
		Insert(serversTable).
		Columns(serversColumns...).
		Values(s.Label, s.Host, s.Account, string(s.Secret)).
		ToSql()
}

// buildDeleteServersByHostsQuery deletes every row whose host is in hosts.
func buildDeleteServersByHostsQuery(hosts []string) (string, []any, error) {
	return psql.
		Delete(serversTable).
		Where(sq.Eq{"host": hosts}).
		ToSql()
}
