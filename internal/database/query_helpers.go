// Melodia - Music Streaming Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/melodia

package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"
)

// queryBuilder appends AND-ed conditions to a base query ending in "WHERE 1=1".
type queryBuilder struct {
	baseQuery string
	args      []interface{}
	filters   []string
}

func newQueryBuilder(baseQuery string) *queryBuilder {
	return &queryBuilder{
		baseQuery: baseQuery,
		args:      make([]interface{}, 0, 8),
		filters:   make([]string, 0, 4),
	}
}

// addFilter adds a condition and its arguments.
func (qb *queryBuilder) addFilter(condition string, args ...interface{}) *queryBuilder {
	qb.filters = append(qb.filters, condition)
	qb.args = append(qb.args, args...)
	return qb
}

// addContains adds a case-insensitive substring match of value against expr.
func (qb *queryBuilder) addContains(expr, value string) *queryBuilder {
	return qb.addFilter("contains(lower("+expr+"), lower(?))", value)
}

// addArgs appends arguments for placeholders in the suffix.
func (qb *queryBuilder) addArgs(args ...interface{}) *queryBuilder {
	qb.args = append(qb.args, args...)
	return qb
}

// build constructs the final query and returns it with args
func (qb *queryBuilder) build(suffix string) (string, []interface{}) {
	query := qb.baseQuery
	if len(qb.filters) > 0 {
		query += " AND " + strings.Join(qb.filters, " AND ")
	}
	if suffix != "" {
		query += " " + suffix
	}
	return query, qb.args
}

// buildInClause returns "?,?,?" and the matching args.
func buildInClause[T any](items []T) (string, []interface{}) {
	placeholders := make([]string, len(items))
	args := make([]interface{}, len(items))
	for i, item := range items {
		placeholders[i] = "?"
		args[i] = item
	}
	return strings.Join(placeholders, ","), args
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanFunc scans a single row into a result type
type scanFunc[T any] func(rowScanner) (T, error)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// queryAndScan executes a query and scans all rows. It never returns a nil
// slice on success.
func queryAndScan[T any](ctx context.Context, q querier, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// nullString converts an optional string for insertion.
func nullString(s *string) driver.Valuer {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// stringPtr converts a scanned NullString back to an optional string.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
