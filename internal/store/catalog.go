package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/roach88/tql/internal/errors"
	"github.com/roach88/tql/internal/logger"
	"github.com/roach88/tql/internal/tql"
)

// Save stores ops under name, replacing any filter already saved under the
// same name. Every operator must serialize; otherwise nothing is written.
// Replacing keeps the filter ID and increments its revision.
func (s *Store) Save(ctx context.Context, name string, ops []tql.Operator) (*Filter, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	rows, fingerprint, err := encodePredicates(ops)
	if err != nil {
		return nil, errors.Wrapf(err, "save filter %q", name)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	var (
		id       string
		revision int64
	)
	err = tx.QueryRowContext(ctx, `SELECT id, revision FROM filters WHERE name = ?`, name).Scan(&id, &revision)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.Must(uuid.NewV7()).String()
		revision = 1
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO filters (id, name, fingerprint, revision)
			VALUES (?, ?, ?, ?)
		`, id, name, fingerprint, revision); err != nil {
			return nil, errors.Wrapf(err, "insert filter %q", name)
		}
	case err != nil:
		return nil, errors.Wrapf(err, "look up filter %q", name)
	default:
		revision++
		if _, err := tx.ExecContext(ctx, `
			UPDATE filters SET fingerprint = ?, revision = ? WHERE id = ?
		`, fingerprint, revision, id); err != nil {
			return nil, errors.Wrapf(err, "update filter %q", name)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM filter_predicates WHERE filter_id = ?`, id); err != nil {
			return nil, errors.Wrapf(err, "clear predicates of %q", name)
		}
	}

	duplicates, err := sameFingerprint(ctx, tx, fingerprint, id)
	if err != nil {
		return nil, err
	}

	fragments := make([]string, len(rows))
	for i, r := range rows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO filter_predicates (filter_id, position, kind, field, operand, fragment)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, i, r.kind, r.field, r.operand, r.fragment); err != nil {
			return nil, errors.Wrapf(err, "insert predicate #%d of %q", i, name)
		}
		fragments[i] = r.fragment
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}

	logger.Named("store").Infow("saved filter",
		logger.FieldName, name,
		logger.FieldID, id,
		logger.FieldCount, len(rows),
		"revision", revision)
	if len(duplicates) > 0 {
		logger.Named("store").Warnw("saved filter duplicates existing filters",
			logger.FieldName, name,
			"duplicates", duplicates)
	}

	return &Filter{
		ID:          id,
		Name:        name,
		Fingerprint: fingerprint,
		Revision:    revision,
		Predicates:  append([]tql.Operator(nil), ops...),
		Fragments:   fragments,
		Duplicates:  duplicates,
	}, nil
}

// sameFingerprint returns the names of other filters whose predicates
// hash to fingerprint.
func sameFingerprint(ctx context.Context, tx *sql.Tx, fingerprint, id string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT name FROM filters
		WHERE fingerprint = ? AND id != ?
		ORDER BY name COLLATE BINARY ASC
	`, fingerprint, id)
	if err != nil {
		return nil, errors.Wrap(err, "query duplicate filters")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scan duplicate filter")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate duplicate filters")
	}
	return names, nil
}

func notFound(name string) error {
	return errors.WithHint(errors.Wrapf(ErrNotFound, "%q", name), "run 'tql filter list' to see saved filters")
}

// Get loads the filter saved under name and rebuilds its operators through
// the registry. Returns ErrNotFound if no such filter exists.
func (s *Store) Get(ctx context.Context, name string) (*Filter, error) {
	name = NormalizeName(name)

	f := &Filter{Name: name}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, revision FROM filters WHERE name = ?
	`, name).Scan(&f.ID, &f.Fingerprint, &f.Revision)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read filter %q", name)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, field, operand, fragment
		FROM filter_predicates
		WHERE filter_id = ?
		ORDER BY position ASC
	`, f.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "query predicates of %q", name)
	}
	defer rows.Close()

	f.Predicates = []tql.Operator{}
	f.Fragments = []string{}
	for rows.Next() {
		var (
			kind, field, fragment string
			operand               sql.NullString
		)
		if err := rows.Scan(&kind, &field, &operand, &fragment); err != nil {
			return nil, errors.Wrap(err, "scan predicate")
		}
		op, err := decodePredicate(kind, field, operand)
		if err != nil {
			return nil, err
		}
		f.Predicates = append(f.Predicates, op)
		f.Fragments = append(f.Fragments, fragment)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate predicates")
	}

	return f, nil
}

// List returns every saved filter ordered by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.name, f.fingerprint, f.revision, COUNT(p.position)
		FROM filters f
		LEFT JOIN filter_predicates p ON p.filter_id = f.id
		GROUP BY f.id
		ORDER BY f.name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query filters")
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Fingerprint, &sum.Revision, &sum.Count); err != nil {
			return nil, errors.Wrap(err, "scan filter")
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate filters")
	}
	return summaries, nil
}

// Delete removes the filter saved under name and its predicates.
// Returns ErrNotFound if no such filter exists.
func (s *Store) Delete(ctx context.Context, name string) error {
	name = NormalizeName(name)

	res, err := s.db.ExecContext(ctx, `DELETE FROM filters WHERE name = ?`, name)
	if err != nil {
		return errors.Wrapf(err, "delete filter %q", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return notFound(name)
	}

	logger.Named("store").Infow("deleted filter", logger.FieldName, name)
	return nil
}
