package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/planscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ planscrape.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements planscrape.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateExtraction archives a new extraction.
func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *planscrape.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	extraction.ID = uuid.New().String()
	extraction.FetchedAt = time.Now().UTC()
	extraction.ContentHash = hashContent(extraction.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, source_url, format, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, extraction.ID, extraction.SourceURL, extraction.Format, extraction.Content,
		extraction.ContentHash, extraction.FetchedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*planscrape.Extraction, error) {
	var extraction planscrape.Extraction
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, format, content, content_hash, fetched_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&extraction.ID, &extraction.SourceURL, &extraction.Format,
		&extraction.Content, &extraction.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, planscrape.Errorf(planscrape.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	extraction.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &extraction, nil
}

// FindExtractions retrieves extractions matching the filter, most recent
// first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter planscrape.ExtractionFilter) ([]*planscrape.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, format, content, content_hash, fetched_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*planscrape.Extraction
	for rows.Next() {
		var extraction planscrape.Extraction
		var fetchedAt string

		if err := rows.Scan(&extraction.ID, &extraction.SourceURL, &extraction.Format,
			&extraction.Content, &extraction.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		extraction.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		extractions = append(extractions, &extraction)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM extractions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return planscrape.Errorf(planscrape.ENOTFOUND, "extraction not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
