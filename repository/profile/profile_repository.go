package profile

import (
	"context"
	"database/sql"

	"github.com/anindyaputri/dress-shop/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ProfileRepository interface {
	Create(ctx context.Context, req *model.ProfileEntity) (*model.ProfileEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.ProfileEntity) (*model.ProfileEntity, error)
	Get(ctx context.Context, filter *model.ProfileFilter) (*model.ProfileEntity, error)
	ListAll(ctx context.Context) ([]model.ProfileEntity, error)
	ListRecent(ctx context.Context, limit int) ([]model.ProfileEntity, error)
	Count(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, userID uint64, role string) (*model.ProfileEntity, error)
}

func NewProfileRepository(conn *sqlx.DB) ProfileRepository {
	return &SQL{conn: conn}
}

const (
	insertProfileQuery = `INSERT INTO profile (user_id, first_name, last_name, phone, role, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getProfileBase     = `SELECT id, user_id, first_name, last_name, phone, role, created_at, updated_at FROM profile WHERE true`
	listProfilesQuery  = `SELECT id, user_id, first_name, last_name, phone, role, created_at, updated_at FROM profile ORDER BY created_at DESC`
	countProfilesQuery = `SELECT COUNT(*) FROM profile`
	updateRoleQuery    = `UPDATE profile SET role = ?, updated_at = NOW() WHERE user_id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ProfileEntity) (*model.ProfileEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertProfileQuery, data.UserID, data.FirstName, data.LastName, data.Phone, data.Role)
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

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ProfileEntity) (*model.ProfileEntity, error) {
	result, err := tx.ExecContext(ctx, insertProfileQuery, data.UserID, data.FirstName, data.LastName, data.Phone, data.Role)
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

func (s *SQL) Get(ctx context.Context, filter *model.ProfileFilter) (*model.ProfileEntity, error) {
	query := getProfileBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}

	var entity model.ProfileEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListAll(ctx context.Context) ([]model.ProfileEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listProfilesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]model.ProfileEntity, 0)
	for rows.Next() {
		var p model.ProfileEntity
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *SQL) ListRecent(ctx context.Context, limit int) ([]model.ProfileEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listProfilesQuery+" LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]model.ProfileEntity, 0)
	for rows.Next() {
		var p model.ProfileEntity
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProfilesQuery); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) UpdateRole(ctx context.Context, userID uint64, role string) (*model.ProfileEntity, error) {
	if _, err := s.conn.ExecContext(ctx, updateRoleQuery, role, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, &model.ProfileFilter{UserID: userID})
}
