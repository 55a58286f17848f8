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

// ListActiveDresses handler
// @Summary List active dresses
// @Description Public catalog: active dresses, newest first
// @Tags Dresses
// @Produce json
// @Success 200 {array} model.DressEntity
// @Router /dresses [get]
func (s *RestHandler) ListActiveDresses(w http.ResponseWriter, r *http.Request) {
	res, err := s.DressApp.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetDress handler
// @Summary Get dress detail
// @Tags Dresses
// @Produce json
// @Param id path int true "Dress ID"
// @Success 200 {object} model.DressEntity
// @Failure 404 {object} errors.CustomError
// @Router /dresses/{id} [get]
func (s *RestHandler) GetDress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DressApp.GetDress(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListAllDresses handler
// @Summary List all dresses
// @Description Admin catalog view, all statuses
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DressEntity
// @Router /admin/dresses [get]
func (s *RestHandler) ListAllDresses(w http.ResponseWriter, r *http.Request) {
	res, err := s.DressApp.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateDress handler
// @Summary Add a dress
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateDressRequest true "Create Dress Request"
// @Success 200 {object} model.DressEntity
// @Failure 400 {object} errors.CustomError
// @Router /admin/dresses [post]
func (s *RestHandler) CreateDress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateDressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DressApp.CreateDress(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateDress handler
// @Summary Update a dress
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dress ID"
// @Param request body model.UpdateDressRequest true "Update Dress Request"
// @Success 200 {object} model.DressEntity
// @Failure 404 {object} errors.CustomError
// @Router /admin/dresses/{id} [put]
func (s *RestHandler) UpdateDress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateDressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DressApp.UpdateDress(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateDressStatus handler
// @Summary Update dress status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dress ID"
// @Param request body model.UpdateDressStatusRequest true "Status Request"
// @Success 200 {object} model.DressEntity
// @Failure 404 {object} errors.CustomError
// @Router /admin/dresses/{id}/status [patch]
func (s *RestHandler) UpdateDressStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateDressStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DressApp.UpdateDressStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteDress handler
// @Summary Delete a dress
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dress ID"
// @Success 200
// @Failure 404 {object} errors.CustomError
// @Router /admin/dresses/{id} [delete]
func (s *RestHandler) DeleteDress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.DressApp.DeleteDress(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// SyncCounters handler
// @Summary Apply a counter delta (internal)
// @Description Called by the counter-sync worker; protected by the internal API key
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.CounterSyncRequest true "Counter Sync Request"
// @Success 200
// @Failure 404 {object} errors.CustomError
// @Router /internal/v1/counters [post]
func (s *RestHandler) SyncCounters(w http.ResponseWriter, r *http.Request) {
	var req model.CounterSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.DressApp.ApplyCounterDelta(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
