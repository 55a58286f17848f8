package model

import "time"

// UserStats feeds the dashboard user cards.
type UserStats struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	TotalRequests int64 `json:"total_requests"`
	TotalLikes    int64 `json:"total_likes"`
}

// UserWithStats is one row of the user-management screen: profile fields plus
// per-user activity counts and the derived last-active status.
type UserWithStats struct {
	ProfileEntity
	Email         string `json:"email"`
	RequestsMade  int64  `json:"requests_made"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
	LastActive    string `json:"last_active"`
	Status        string `json:"status"`
}

// RecentUser is a newest-profiles row with light counts for the dashboard.
type RecentUser struct {
	ProfileEntity
	RequestsMade int64 `json:"requests_made"`
	LikesCount   int64 `json:"likes_count"`
}

// ActivityTimestamps collects the most recent activity per table for one user.
type ActivityTimestamps struct {
	LatestRequest *time.Time
	LatestLike    *time.Time
	LatestComment *time.Time
}
