package activity

import (
	"context"
	"database/sql"
	"time"

	"github.com/anindyaputri/dress-shop/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// ActivityRepository covers the three activity tables (dress_like,
// dress_comment, dress_request). They share a shape and are always read
// together by the dashboard aggregation.
type ActivityRepository interface {
	// likes
	LikeExistsTx(ctx context.Context, tx *sqlx.Tx, userID, dressID uint64) (bool, error)
	InsertLikeTx(ctx context.Context, tx *sqlx.Tx, userID, dressID uint64) error
	DeleteLikeTx(ctx context.Context, tx *sqlx.Tx, userID, dressID uint64) error
	LikeExists(ctx context.Context, userID, dressID uint64) (bool, error)

	// comments
	InsertComment(ctx context.Context, req *model.CommentEntity) (*model.CommentEntity, error)
	ListCommentsByDress(ctx context.Context, dressID uint64) ([]model.CommentWithAuthor, error)

	// requests
	InsertRequest(ctx context.Context, req *model.RequestEntity) (*model.RequestEntity, error)
	GetRequestByID(ctx context.Context, id uint64) (*model.RequestEntity, error)
	UpdateRequestStatus(ctx context.Context, id uint64, status string) error
	ListRequests(ctx context.Context) ([]model.RequestWithDetails, error)

	// aggregation
	CountLikes(ctx context.Context) (int64, error)
	CountRequests(ctx context.Context) (int64, error)
	CountLikesByUser(ctx context.Context, userID uint64) (int64, error)
	CountCommentsByUser(ctx context.Context, userID uint64) (int64, error)
	CountRequestsByUser(ctx context.Context, userID uint64) (int64, error)
	LatestTimestampsByUser(ctx context.Context, userID uint64) (*model.ActivityTimestamps, error)
	ActiveUserIDsSince(ctx context.Context, since time.Time) ([]uint64, error)
}

func NewActivityRepository(conn *sqlx.DB) ActivityRepository {
	return &SQL{conn: conn}
}

func (s *SQL) LikeExistsTx(ctx context.Context, tx *sqlx.Tx, userID, dressID uint64) (bool, error) {
	var exists bool
	q := `SELECT EXISTS(SELECT 1 FROM dress_like WHERE user_id = ? AND dress_id = ?)`
	if err := tx.GetContext(ctx, &exists, q, userID, dressID); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) InsertLikeTx(ctx context.Context, tx *sqlx.Tx, userID, dressID uint64) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO dress_like (user_id, dress_id, created_at) VALUES (?, ?, NOW())`, userID, dressID)
	return err
}

func (s *SQL) DeleteLikeTx(ctx context.Context, tx *sqlx.Tx, userID, dressID uint64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM dress_like WHERE user_id = ? AND dress_id = ?`, userID, dressID)
	return err
}

func (s *SQL) LikeExists(ctx context.Context, userID, dressID uint64) (bool, error) {
	var exists bool
	q := `SELECT EXISTS(SELECT 1 FROM dress_like WHERE user_id = ? AND dress_id = ?)`
	if err := s.conn.GetContext(ctx, &exists, q, userID, dressID); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) InsertComment(ctx context.Context, data *model.CommentEntity) (*model.CommentEntity, error) {
	result, err := s.conn.ExecContext(ctx, `INSERT INTO dress_comment (dress_id, user_id, comment, created_at) VALUES (?, ?, ?, NOW())`,
		data.DressID, data.UserID, data.Comment)
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

const listCommentsQuery = `SELECT c.id, c.dress_id, c.user_id, c.comment, c.created_at, p.first_name, p.last_name
FROM dress_comment c
JOIN profile p ON p.user_id = c.user_id
WHERE c.dress_id = ?
ORDER BY c.created_at DESC`

func (s *SQL) ListCommentsByDress(ctx context.Context, dressID uint64) ([]model.CommentWithAuthor, error) {
	rows, err := s.conn.QueryxContext(ctx, listCommentsQuery, dressID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]model.CommentWithAuthor, 0)
	for rows.Next() {
		var c model.CommentWithAuthor
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *SQL) InsertRequest(ctx context.Context, data *model.RequestEntity) (*model.RequestEntity, error) {
	result, err := s.conn.ExecContext(ctx, `INSERT INTO dress_request (dress_id, user_id, status, message, created_at) VALUES (?, ?, ?, ?, NOW())`,
		data.DressID, data.UserID, data.Status, data.Message)
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

func (s *SQL) GetRequestByID(ctx context.Context, id uint64) (*model.RequestEntity, error) {
	var entity model.RequestEntity
	q := `SELECT id, dress_id, user_id, status, message, created_at FROM dress_request WHERE id = ?`
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateRequestStatus(ctx context.Context, id uint64, status string) error {
	_, err := s.conn.ExecContext(ctx, `UPDATE dress_request SET status = ? WHERE id = ?`, status, id)
	return err
}

const listRequestsQuery = `SELECT r.id, r.dress_id, d.name as dress_name, r.user_id, p.first_name, p.last_name, r.status, r.message, r.created_at
FROM dress_request r
JOIN dress d ON d.id = r.dress_id
JOIN profile p ON p.user_id = r.user_id
ORDER BY r.created_at DESC`

func (s *SQL) ListRequests(ctx context.Context) ([]model.RequestWithDetails, error) {
	rows, err := s.conn.QueryxContext(ctx, listRequestsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]model.RequestWithDetails, 0)
	for rows.Next() {
		var r model.RequestWithDetails
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *SQL) CountLikes(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM dress_like`)
}

func (s *SQL) CountRequests(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM dress_request`)
}

func (s *SQL) CountLikesByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM dress_like WHERE user_id = ?`, userID)
}

func (s *SQL) CountCommentsByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM dress_comment WHERE user_id = ?`, userID)
}

func (s *SQL) CountRequestsByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM dress_request WHERE user_id = ?`, userID)
}

// LatestTimestampsByUser takes the single most recent row per activity table.
func (s *SQL) LatestTimestampsByUser(ctx context.Context, userID uint64) (*model.ActivityTimestamps, error) {
	ts := &model.ActivityTimestamps{}

	var err error
	if ts.LatestRequest, err = s.latest(ctx, `SELECT created_at FROM dress_request WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`, userID); err != nil {
		return nil, err
	}
	if ts.LatestLike, err = s.latest(ctx, `SELECT created_at FROM dress_like WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`, userID); err != nil {
		return nil, err
	}
	if ts.LatestComment, err = s.latest(ctx, `SELECT created_at FROM dress_comment WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`, userID); err != nil {
		return nil, err
	}
	return ts, nil
}

const activeUsersQuery = `SELECT DISTINCT user_id FROM (
SELECT user_id FROM dress_request WHERE created_at >= ?
UNION SELECT user_id FROM dress_like WHERE created_at >= ?
UNION SELECT user_id FROM dress_comment WHERE created_at >= ?
) a`

func (s *SQL) ActiveUserIDsSince(ctx context.Context, since time.Time) ([]uint64, error) {
	rows, err := s.conn.QueryxContext(ctx, activeUsersQuery, since, since, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQL) count(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) latest(ctx context.Context, query string, args ...any) (*time.Time, error) {
	var t time.Time
	if err := s.conn.GetContext(ctx, &t, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
