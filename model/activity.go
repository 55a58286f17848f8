package model

import "time"

// LikeEntity represents the dress_like table entity
type LikeEntity struct {
	ID        uint64    `db:"id" json:"id"`
	DressID   uint64    `db:"dress_id" json:"dress_id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CommentEntity represents the dress_comment table entity
type CommentEntity struct {
	ID        uint64    `db:"id" json:"id"`
	DressID   uint64    `db:"dress_id" json:"dress_id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CommentWithAuthor joins a comment with the author's profile name for display.
type CommentWithAuthor struct {
	ID        uint64    `db:"id" json:"id"`
	DressID   uint64    `db:"dress_id" json:"dress_id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	Comment   string    `db:"comment" json:"comment"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RequestEntity represents the dress_request table entity: a user's intent to
// acquire a dress, distinct from a purchase.
type RequestEntity struct {
	ID        uint64    `db:"id" json:"id"`
	DressID   uint64    `db:"dress_id" json:"dress_id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	Status    string    `db:"status" json:"status"`
	Message   string    `db:"message" json:"message,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RequestWithDetails joins a request with dress and requester info for the
// admin back-office listing.
type RequestWithDetails struct {
	ID        uint64    `db:"id" json:"id"`
	DressID   uint64    `db:"dress_id" json:"dress_id"`
	DressName string    `db:"dress_name" json:"dress_name"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Status    string    `db:"status" json:"status"`
	Message   string    `db:"message" json:"message,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AddCommentRequest for posting a comment on a dress
type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// CreateDressRequestRequest for submitting a dress request
type CreateDressRequestRequest struct {
	Message string `json:"message"`
}

// UpdateRequestStatusRequest for the admin back-office
type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ToggleLikeResponse reports the resulting like state
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

// CounterSyncRequest is posted by the worker to the internal counter endpoint.
type CounterSyncRequest struct {
	DressID      uint64 `json:"dress_id" validate:"required"`
	LikeDelta    int64  `json:"like_delta"`
	RequestDelta int64  `json:"request_delta"`
}
