package transport

import (
	"encoding/json"
	"net/http"

	"github.com/anindyaputri/dress-shop/constant"
	"github.com/anindyaputri/dress-shop/model"
	"github.com/anindyaputri/dress-shop/utils/errors"
	validatorx "github.com/anindyaputri/dress-shop/utils/validator"
)

// DashboardResponse combines the dress and user statistics shown on the
// admin dashboard in one load.
type DashboardResponse struct {
	DressStats  *model.DressStatistics `json:"dress_stats"`
	UserStats   *model.UserStats       `json:"user_stats"`
	RecentUsers []model.RecentUser     `json:"recent_users"`
}

// Dashboard handler
// @Summary Admin dashboard statistics
// @Description Counts, top requested dresses and recent users. Fails as a whole if any sub-query fails.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} errors.CustomError
// @Router /admin/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dressStats, err := s.DressApp.Statistics(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	userStats, err := s.UserApp.UserStatistics(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	recentUsers, err := s.UserApp.RecentUsers(ctx, 5)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, &DashboardResponse{
		DressStats:  dressStats,
		UserStats:   userStats,
		RecentUsers: recentUsers,
	})
}

// ListUsersWithStats handler
// @Summary User management listing
// @Description Profiles with per-user activity counts and last-active status
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserWithStats
// @Failure 500 {object} errors.CustomError
// @Router /admin/users [get]
func (s *RestHandler) ListUsersWithStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.UsersWithStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateUserRole handler
// @Summary Change a user's role
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body model.UpdateRoleRequest true "Role Request"
// @Success 200 {object} model.ProfileEntity
// @Failure 400 {object} errors.CustomError
// @Router /admin/users/{id}/role [patch]
func (s *RestHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateUserRole(r.Context(), userID, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListRequests handler
// @Summary List dress requests
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RequestWithDetails
// @Router /admin/requests [get]
func (s *RestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	res, err := s.ActivityApp.ListRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateRequestStatus handler
// @Summary Update a dress request's status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body model.UpdateRequestStatusRequest true "Status Request"
// @Success 200
// @Failure 400 {object} errors.CustomError
// @Router /admin/requests/{id}/status [patch]
func (s *RestHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ActivityApp.UpdateRequestStatus(r.Context(), requestID, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
