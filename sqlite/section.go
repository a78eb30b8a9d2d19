package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ cardanomcp.SectionStore = (*SectionService)(nil)

// SectionService implements cardanomcp.SectionStore using SQLite.
type SectionService struct {
	db *DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *DB) *SectionService {
	return &SectionService{db: db}
}

// SaveSection stores a section under its metadata ID, replacing any
// previous record with the same ID.
func (s *SectionService) SaveSection(ctx context.Context, meta *cardanomcp.DocumentationMetadata, section *cardanomcp.ParsedSection) error {
	if meta.ID == "" {
		return cardanomcp.Errorf(cardanomcp.EINVALID, "metadata ID required")
	}
	if err := section.Validate(); err != nil {
		return err
	}

	topics, err := json.Marshal(meta.Topics)
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}
	codeBlocks, err := json.Marshal(section.CodeBlocks)
	if err != nil {
		return fmt.Errorf("failed to encode code blocks: %w", err)
	}

	contentHash := fmt.Sprintf("%016x", xxhash.Sum64String(section.Content))
	indexedAt := time.Now().UTC().Format(time.RFC3339)

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sections
			(id, source_id, title, path, rank, topics, content, code_blocks, level, original_html, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, meta.ID, meta.SourceID, meta.Title, meta.Path, meta.Order, string(topics),
		section.Content, string(codeBlocks), section.Level, section.OriginalHTML,
		contentHash, indexedAt)

	return err
}

// FindSectionByID retrieves a stored section by metadata ID.
func (s *SectionService) FindSectionByID(ctx context.Context, id string) (*cardanomcp.IndexedSection, error) {
	var indexed cardanomcp.IndexedSection
	var topics, codeBlocks, indexedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_id, title, path, rank, topics, content, code_blocks, level, original_html, content_hash, indexed_at
		FROM sections
		WHERE id = ?
	`, id).Scan(&indexed.Metadata.ID, &indexed.Metadata.SourceID, &indexed.Metadata.Title,
		&indexed.Metadata.Path, &indexed.Metadata.Order, &topics,
		&indexed.Section.Content, &codeBlocks, &indexed.Section.Level,
		&indexed.Section.OriginalHTML, &indexed.ContentHash, &indexedAt)

	if err == sql.ErrNoRows {
		return nil, cardanomcp.Errorf(cardanomcp.ENOTFOUND, "section not found")
	}
	if err != nil {
		return nil, err
	}

	indexed.Section.Title = indexed.Metadata.Title
	if err := json.Unmarshal([]byte(topics), &indexed.Metadata.Topics); err != nil {
		return nil, fmt.Errorf("failed to decode topics: %w", err)
	}
	if err := json.Unmarshal([]byte(codeBlocks), &indexed.Section.CodeBlocks); err != nil {
		return nil, fmt.Errorf("failed to decode code blocks: %w", err)
	}
	indexed.IndexedAt, err = time.Parse(time.RFC3339, indexedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse indexed_at: %w", err)
	}

	return &indexed, nil
}

// FindMetadataBySource retrieves metadata for all sections of a source,
// ordered by rank then ID.
func (s *SectionService) FindMetadataBySource(ctx context.Context, sourceID string) ([]*cardanomcp.DocumentationMetadata, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_id, title, path, rank, topics
		FROM sections
		WHERE source_id = ?
		ORDER BY rank, id
	`, sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []*cardanomcp.DocumentationMetadata
	for rows.Next() {
		var meta cardanomcp.DocumentationMetadata
		var topics string

		if err := rows.Scan(&meta.ID, &meta.SourceID, &meta.Title, &meta.Path, &meta.Order, &topics); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(topics), &meta.Topics); err != nil {
			return nil, fmt.Errorf("failed to decode topics: %w", err)
		}
		metas = append(metas, &meta)
	}

	return metas, rows.Err()
}

// DeleteSectionsBySource removes all sections for a source.
func (s *SectionService) DeleteSectionsBySource(ctx context.Context, sourceID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE source_id = ?", sourceID)
	return err
}
