package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cardanomcp.SourceRegistry = (*RegistryService)(nil)

// RegistryService implements cardanomcp.SourceRegistry using SQLite.
type RegistryService struct {
	db *DB
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(db *DB) *RegistryService {
	return &RegistryService{db: db}
}

// AddSource registers a new source. An ID is assigned if empty.
func (s *RegistryService) AddSource(ctx context.Context, source *cardanomcp.DocumentationSource) error {
	if source.ID == "" {
		source.ID = uuid.New().String()
	}
	if err := source.Validate(); err != nil {
		return err
	}

	lastFetched := ""
	if source.LastFetched != nil {
		lastFetched = source.LastFetched.UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sources (id, location, type, version, last_fetched)
		VALUES (?, ?, ?, ?, ?)
	`, source.ID, source.Location, string(source.Type), source.Version, lastFetched)

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return cardanomcp.Errorf(cardanomcp.ECONFLICT, "source %q already registered", source.ID)
	}
	return err
}

// FindSourceByID retrieves a source by ID.
func (s *RegistryService) FindSourceByID(ctx context.Context, id string) (*cardanomcp.DocumentationSource, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, location, type, version, last_fetched
		FROM sources
		WHERE id = ?
	`, id)

	source, err := scanSource(row.Scan)
	if err == sql.ErrNoRows {
		return nil, cardanomcp.Errorf(cardanomcp.ENOTFOUND, "source not found")
	}
	if err != nil {
		return nil, err
	}
	return source, nil
}

// FindSources retrieves sources matching the filter.
func (s *RegistryService) FindSources(ctx context.Context, filter cardanomcp.SourceFilter) ([]*cardanomcp.DocumentationSource, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, location, type, version, last_fetched FROM sources WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Type))
	}

	query.WriteString(" ORDER BY id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*cardanomcp.DocumentationSource
	for rows.Next() {
		source, err := scanSource(rows.Scan)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// DeleteSource removes a source. Its sections are removed by cascade.
func (s *RegistryService) DeleteSource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return cardanomcp.Errorf(cardanomcp.ENOTFOUND, "source not found")
	}

	return nil
}

// MarkFetched records the time a source was last fetched.
func (s *RegistryService) MarkFetched(ctx context.Context, id string, at time.Time) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE sources SET last_fetched = ? WHERE id = ?
	`, at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return cardanomcp.Errorf(cardanomcp.ENOTFOUND, "source not found")
	}

	return nil
}

// scanSource scans a sources row using the given scan function.
func scanSource(scan func(dest ...any) error) (*cardanomcp.DocumentationSource, error) {
	var source cardanomcp.DocumentationSource
	var sourceType, lastFetched string

	if err := scan(&source.ID, &source.Location, &sourceType, &source.Version, &lastFetched); err != nil {
		return nil, err
	}

	source.Type = cardanomcp.SourceType(sourceType)
	if lastFetched != "" {
		t, err := time.Parse(time.RFC3339, lastFetched)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last_fetched: %w", err)
		}
		source.LastFetched = &t
	}

	return &source, nil
}
