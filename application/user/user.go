package user

import (
	"context"
	"fmt"
	"time"

	"github.com/anindyaputri/dress-shop/cmd/config"
	"github.com/anindyaputri/dress-shop/constant"
	"github.com/anindyaputri/dress-shop/model"
	activityrepo "github.com/anindyaputri/dress-shop/repository/activity"
	profilerepo "github.com/anindyaputri/dress-shop/repository/profile"
	redisrepo "github.com/anindyaputri/dress-shop/repository/redis"
	userrepo "github.com/anindyaputri/dress-shop/repository/user"
	"github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/anindyaputri/dress-shop/utils/logger"
	"go.uber.org/zap"
)

// UserApp backs the admin dashboard and user-management screens.
type UserApp interface {
	UsersWithStats(ctx context.Context) ([]model.UserWithStats, error)
	UserStatistics(ctx context.Context) (*model.UserStats, error)
	RecentUsers(ctx context.Context, limit int) ([]model.RecentUser, error)
	UpdateUserRole(ctx context.Context, userID uint64, role string) (*model.ProfileEntity, error)
}

type userAppImpl struct {
	config       *config.Config
	profileRepo  profilerepo.ProfileRepository
	userRepo     userrepo.UserRepository
	activityRepo activityrepo.ActivityRepository
	redisRepo    redisrepo.Repository
}

func NewUserApp(config *config.Config, profileRepo profilerepo.ProfileRepository, userRepo userrepo.UserRepository, activityRepo activityrepo.ActivityRepository, redisRepo redisrepo.Repository) UserApp {
	return &userAppImpl{
		config:       config,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		redisRepo:    redisRepo,
	}
}

// UsersWithStats builds one row per profile with activity counts and the
// derived last-active status. It issues the sub-queries per user with no
// batching; the admin user base is expected to stay small. Any failed
// sub-query fails the whole load - no partial rows are returned.
func (s *userAppImpl) UsersWithStats(ctx context.Context) ([]model.UserWithStats, error) {
	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[UsersWithStats] err profileRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userIDs := make([]uint64, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}

	emails, err := s.userRepo.EmailsByUserIDs(ctx, userIDs)
	if err != nil {
		logger.Error("[UsersWithStats] err userRepo.EmailsByUserIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	rows := make([]model.UserWithStats, 0, len(profiles))
	for _, profile := range profiles {
		requests, err := s.activityRepo.CountRequestsByUser(ctx, profile.UserID)
		if err != nil {
			logger.Error("[UsersWithStats] err CountRequestsByUser", zap.Uint64("user_id", profile.UserID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		likes, err := s.activityRepo.CountLikesByUser(ctx, profile.UserID)
		if err != nil {
			logger.Error("[UsersWithStats] err CountLikesByUser", zap.Uint64("user_id", profile.UserID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		comments, err := s.activityRepo.CountCommentsByUser(ctx, profile.UserID)
		if err != nil {
			logger.Error("[UsersWithStats] err CountCommentsByUser", zap.Uint64("user_id", profile.UserID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		timestamps, err := s.activityRepo.LatestTimestampsByUser(ctx, profile.UserID)
		if err != nil {
			logger.Error("[UsersWithStats] err LatestTimestampsByUser", zap.Uint64("user_id", profile.UserID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		lastActivity := LastActivity(profile.CreatedAt, timestamps)

		email, ok := emails[profile.UserID]
		if !ok {
			email = "N/A"
		}

		rows = append(rows, model.UserWithStats{
			ProfileEntity: profile,
			Email:         email,
			RequestsMade:  requests,
			LikesCount:    likes,
			CommentsCount: comments,
			LastActive:    TimeSince(lastActivity, now),
			Status:        ActivityStatus(lastActivity, now),
		})
	}

	return rows, nil
}

// UserStatistics feeds the dashboard cards: totals plus the count of distinct
// users with any activity inside the 7-day window.
func (s *userAppImpl) UserStatistics(ctx context.Context) (*model.UserStats, error) {
	totalUsers, err := s.profileRepo.Count(ctx)
	if err != nil {
		logger.Error("[UserStatistics] err profileRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalRequests, err := s.activityRepo.CountRequests(ctx)
	if err != nil {
		logger.Error("[UserStatistics] err activityRepo.CountRequests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalLikes, err := s.activityRepo.CountLikes(ctx)
	if err != nil {
		logger.Error("[UserStatistics] err activityRepo.CountLikes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	since := time.Now().AddDate(0, 0, -constant.ActivityDaysThreshold)
	activeIDs, err := s.activityRepo.ActiveUserIDsSince(ctx, since)
	if err != nil {
		logger.Error("[UserStatistics] err activityRepo.ActiveUserIDsSince", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserStats{
		TotalUsers:    totalUsers,
		ActiveUsers:   int64(len(activeIDs)),
		TotalRequests: totalRequests,
		TotalLikes:    totalLikes,
	}, nil
}

func (s *userAppImpl) RecentUsers(ctx context.Context, limit int) ([]model.RecentUser, error) {
	if limit <= 0 {
		limit = 5
	}

	profiles, err := s.profileRepo.ListRecent(ctx, limit)
	if err != nil {
		logger.Error("[RecentUsers] err profileRepo.ListRecent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows := make([]model.RecentUser, 0, len(profiles))
	for _, profile := range profiles {
		requests, err := s.activityRepo.CountRequestsByUser(ctx, profile.UserID)
		if err != nil {
			logger.Error("[RecentUsers] err CountRequestsByUser", zap.Uint64("user_id", profile.UserID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		likes, err := s.activityRepo.CountLikesByUser(ctx, profile.UserID)
		if err != nil {
			logger.Error("[RecentUsers] err CountLikesByUser", zap.Uint64("user_id", profile.UserID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		rows = append(rows, model.RecentUser{
			ProfileEntity: profile,
			RequestsMade:  requests,
			LikesCount:    likes,
		})
	}
	return rows, nil
}

func (s *userAppImpl) UpdateUserRole(ctx context.Context, userID uint64, role string) (*model.ProfileEntity, error) {
	existing, err := s.profileRepo.Get(ctx, &model.ProfileFilter{UserID: userID})
	if err != nil {
		logger.Error("[UpdateUserRole] err profileRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	profile, err := s.profileRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		logger.Error("[UpdateUserRole] err profileRepo.UpdateRole", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Refresh the cached role so the guard picks the change up immediately
	if err := s.redisRepo.SetRole(ctx, userID, role, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[UpdateUserRole] err redisRepo.SetRole", zap.String("error", err.Error()))
	}

	return profile, nil
}

// LastActivity reduces the most recent like/comment/request timestamps to
// their maximum, falling back to the account creation time when the user has
// no activity at all.
func LastActivity(createdAt time.Time, ts *model.ActivityTimestamps) time.Time {
	last := createdAt
	for _, t := range []*time.Time{ts.LatestRequest, ts.LatestLike, ts.LatestComment} {
		if t != nil && t.After(last) {
			last = *t
		}
	}
	return last
}

// ActivityStatus labels a user Active when their last activity falls within
// the 7-day window.
func ActivityStatus(lastActivity, now time.Time) string {
	days := int(now.Sub(lastActivity).Hours() / 24)
	if days <= constant.ActivityDaysThreshold {
		return constant.UserStatusActive
	}
	return constant.UserStatusInactive
}

// TimeSince renders a coarse human label for the last-active column.
func TimeSince(t, now time.Time) string {
	diff := now.Sub(t)

	seconds := int(diff.Seconds())
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24
	weeks := days / 7
	months := days / 30

	switch {
	case seconds < 60:
		return "Just now"
	case minutes < 60:
		return pluralize(minutes, "minute")
	case hours < 24:
		return pluralize(hours, "hour")
	case days < 7:
		return pluralize(days, "day")
	case weeks < 4:
		return pluralize(weeks, "week")
	default:
		return pluralize(months, "month")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
