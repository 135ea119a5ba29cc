package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/aminafi/smartfinance/internal/models"
)

// PatternRepository stores the labelled phrase patterns the similarity
// strategy matches against. Keywords and verbs live in text[] columns.
type PatternRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPatternRepository(db *pgxpool.Pool, logger *zap.Logger) *PatternRepository {
	return &PatternRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PatternRepository) Create(ctx context.Context, p *models.Pattern) error {
	query := squirrel.Insert("patterns").
		Columns("id", "keywords", "verbs", "type", "title", "category", "created_at", "updated_at").
		Values(p.ID, p.Keywords, p.Verbs, p.Type, p.Title, p.Category, p.CreatedAt, p.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PatternRepository) CreateBatch(ctx context.Context, patterns []*models.Pattern) error {
	if len(patterns) == 0 {
		return nil
	}

	query := squirrel.Insert("patterns").
		Columns("id", "keywords", "verbs", "type", "title", "category", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range patterns {
		query = query.Values(p.ID, p.Keywords, p.Verbs, p.Type, p.Title, p.Category, p.CreatedAt, p.UpdatedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	r.logger.Info("patterns inserted", zap.Int("count", len(patterns)))
	return nil
}

func (r *PatternRepository) ListAll(ctx context.Context) ([]models.Pattern, error) {
	query := squirrel.Select("id", "keywords", "verbs", "type", "title", "category", "created_at", "updated_at").
		From("patterns").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patterns []models.Pattern
	for rows.Next() {
		var p models.Pattern
		if err := rows.Scan(
			&p.ID, &p.Keywords, &p.Verbs, &p.Type, &p.Title, &p.Category, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}
