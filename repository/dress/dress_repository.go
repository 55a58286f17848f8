package dress

import (
	"context"
	"database/sql"

	"github.com/anindyaputri/dress-shop/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type DressRepository interface {
	Create(ctx context.Context, req *model.DressEntity) (*model.DressEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.DressEntity, error)
	ListAll(ctx context.Context) ([]model.DressEntity, error)
	ListByStatus(ctx context.Context, status string) ([]model.DressEntity, error)
	Update(ctx context.Context, entity *model.DressEntity) error
	UpdateStatus(ctx context.Context, id uint64, status string) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	TopByRequestCount(ctx context.Context, limit int) ([]model.DressEntity, error)
	ApplyCounterDelta(ctx context.Context, id uint64, likeDelta, requestDelta int64) error
}

func NewDressRepository(conn *sqlx.DB) DressRepository {
	return &SQL{conn: conn}
}

const (
	dressColumns = `id, name, price, category, description, features, sizes, colors, images, like_count, request_count, status, created_by, created_at, updated_at`

	insertDressQuery = `INSERT INTO dress (name, price, category, description, features, sizes, colors, images, status, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateDressQuery = `UPDATE dress SET name = ?, price = ?, category = ?, description = ?, features = ?, sizes = ?, colors = ?, images = ?, updated_at = NOW() WHERE id = ?`

	// GREATEST keeps counters from going negative when events arrive out of order.
	counterDeltaQuery = `UPDATE dress SET like_count = GREATEST(CAST(like_count AS SIGNED) + ?, 0), request_count = GREATEST(CAST(request_count AS SIGNED) + ?, 0) WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.DressEntity) (*model.DressEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertDressQuery,
		data.Name, data.Price, data.Category, data.Description,
		data.Features, data.Sizes, data.Colors, data.Images,
		data.Status, data.CreatedBy)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.DressEntity, error) {
	var entity model.DressEntity
	query := `SELECT ` + dressColumns + ` FROM dress WHERE id = ?`
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListAll(ctx context.Context) ([]model.DressEntity, error) {
	query := `SELECT ` + dressColumns + ` FROM dress ORDER BY created_at DESC`
	return s.queryDresses(ctx, query)
}

func (s *SQL) ListByStatus(ctx context.Context, status string) ([]model.DressEntity, error) {
	query := `SELECT ` + dressColumns + ` FROM dress WHERE status = ? ORDER BY created_at DESC`
	return s.queryDresses(ctx, query, status)
}

func (s *SQL) Update(ctx context.Context, entity *model.DressEntity) error {
	_, err := s.conn.ExecContext(ctx, updateDressQuery,
		entity.Name, entity.Price, entity.Category, entity.Description,
		entity.Features, entity.Sizes, entity.Colors, entity.Images,
		entity.ID)
	return err
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status string) error {
	_, err := s.conn.ExecContext(ctx, `UPDATE dress SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM dress WHERE id = ?`, id)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, `SELECT COUNT(*) FROM dress`); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, `SELECT COUNT(*) FROM dress WHERE status = ?`, status); err != nil {
		return 0, err
	}
	return total, nil
}

// TopByRequestCount orders by request_count descending with id as tiebreak so
// repeated identical queries return a stable order.
func (s *SQL) TopByRequestCount(ctx context.Context, limit int) ([]model.DressEntity, error) {
	query := `SELECT ` + dressColumns + ` FROM dress ORDER BY request_count DESC, id ASC LIMIT ?`
	return s.queryDresses(ctx, query, limit)
}

func (s *SQL) ApplyCounterDelta(ctx context.Context, id uint64, likeDelta, requestDelta int64) error {
	_, err := s.conn.ExecContext(ctx, counterDeltaQuery, likeDelta, requestDelta, id)
	return err
}

func (s *SQL) queryDresses(ctx context.Context, query string, args ...any) ([]model.DressEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dresses := make([]model.DressEntity, 0)
	for rows.Next() {
		var d model.DressEntity
		if err := rows.StructScan(&d); err != nil {
			return nil, err
		}
		dresses = append(dresses, d)
	}
	return dresses, rows.Err()
}
