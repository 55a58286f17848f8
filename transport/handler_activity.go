package transport

import (
	"encoding/json"
	"net/http"

	"github.com/anindyaputri/dress-shop/constant"
	"github.com/anindyaputri/dress-shop/model"
	utilsContext "github.com/anindyaputri/dress-shop/utils/context"
	"github.com/anindyaputri/dress-shop/utils/errors"
	validatorx "github.com/anindyaputri/dress-shop/utils/validator"
)

// ToggleLike handler
// @Summary Toggle like on a dress
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dress ID"
// @Success 200 {object} model.ToggleLikeResponse
// @Failure 404 {object} errors.CustomError
// @Router /dresses/{id}/like [post]
func (s *RestHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	dressID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ActivityApp.ToggleLike(ctx, userID, dressID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// LikeStatus handler
// @Summary Check whether the caller liked a dress
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dress ID"
// @Success 200 {object} model.ToggleLikeResponse
// @Router /dresses/{id}/like [get]
func (s *RestHandler) LikeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	dressID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ActivityApp.LikeStatus(ctx, userID, dressID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListComments handler
// @Summary List comments on a dress
// @Tags Activity
// @Produce json
// @Param id path int true "Dress ID"
// @Success 200 {array} model.CommentWithAuthor
// @Router /dresses/{id}/comments [get]
func (s *RestHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	dressID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ActivityApp.ListComments(r.Context(), dressID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddComment handler
// @Summary Comment on a dress
// @Tags Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dress ID"
// @Param request body model.AddCommentRequest true "Comment Request"
// @Success 200 {object} model.CommentEntity
// @Failure 404 {object} errors.CustomError
// @Router /dresses/{id}/comments [post]
func (s *RestHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	dressID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ActivityApp.AddComment(ctx, userID, dressID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateRequest handler
// @Summary Request a dress
// @Description Submit an intent to acquire a dress
// @Tags Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dress ID"
// @Param request body model.CreateDressRequestRequest true "Dress Request"
// @Success 200 {object} model.RequestEntity
// @Failure 404 {object} errors.CustomError
// @Router /dresses/{id}/requests [post]
func (s *RestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	dressID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CreateDressRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ActivityApp.CreateRequest(ctx, userID, dressID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
