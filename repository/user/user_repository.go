package user

import (
	"context"
	"database/sql"

	"github.com/anindyaputri/dress-shop/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	EmailsByUserIDs(ctx context.Context, userIDs []uint64) (map[uint64]string, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (email, password_hash, created_at) VALUES (?, ?, NOW())`
	getUserBase     = `SELECT id, email, password_hash, created_at FROM user WHERE true`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := tx.ExecContext(ctx, insertUserQuery, data.Email, data.PasswordHash)
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

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) EmailsByUserIDs(ctx context.Context, userIDs []uint64) (map[uint64]string, error) {
	emails := make(map[uint64]string, len(userIDs))
	if len(userIDs) == 0 {
		return emails, nil
	}

	query, args, err := sqlx.In("SELECT id, email FROM user WHERE id IN (?)", userIDs)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, s.conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row struct {
			ID    uint64 `db:"id"`
			Email string `db:"email"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		emails[row.ID] = row.Email
	}
	return emails, rows.Err()
}
