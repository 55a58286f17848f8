package dress

import (
	"context"

	"github.com/anindyaputri/dress-shop/constant"
	"github.com/anindyaputri/dress-shop/model"
	activityrepo "github.com/anindyaputri/dress-shop/repository/activity"
	dressrepo "github.com/anindyaputri/dress-shop/repository/dress"
	"github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/anindyaputri/dress-shop/utils/logger"
	"go.uber.org/zap"
)

const topDressesLimit = 5

type DressApp interface {
	ListAll(ctx context.Context) ([]model.DressEntity, error)
	ListActive(ctx context.Context) ([]model.DressEntity, error)
	GetDress(ctx context.Context, id uint64) (*model.DressEntity, error)
	CreateDress(ctx context.Context, userID uint64, req *model.CreateDressRequest) (*model.DressEntity, error)
	UpdateDress(ctx context.Context, id uint64, req *model.UpdateDressRequest) (*model.DressEntity, error)
	UpdateDressStatus(ctx context.Context, id uint64, status string) (*model.DressEntity, error)
	DeleteDress(ctx context.Context, id uint64) error
	Statistics(ctx context.Context) (*model.DressStatistics, error)
	ApplyCounterDelta(ctx context.Context, req *model.CounterSyncRequest) error
}

type dressAppImpl struct {
	dressRepo    dressrepo.DressRepository
	activityRepo activityrepo.ActivityRepository
}

func NewDressApp(dressRepo dressrepo.DressRepository, activityRepo activityrepo.ActivityRepository) DressApp {
	return &dressAppImpl{dressRepo: dressRepo, activityRepo: activityRepo}
}

func (s *dressAppImpl) ListAll(ctx context.Context) ([]model.DressEntity, error) {
	dresses, err := s.dressRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListAll] err dressRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return dresses, nil
}

func (s *dressAppImpl) ListActive(ctx context.Context) ([]model.DressEntity, error) {
	dresses, err := s.dressRepo.ListByStatus(ctx, constant.DressStatusActive)
	if err != nil {
		logger.Error("[ListActive] err dressRepo.ListByStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return dresses, nil
}

func (s *dressAppImpl) GetDress(ctx context.Context, id uint64) (*model.DressEntity, error) {
	dress, err := s.dressRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetDress] err dressRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if dress == nil {
		return nil, errors.SetCustomError(constant.ErrDressNotFound)
	}
	return dress, nil
}

func (s *dressAppImpl) CreateDress(ctx context.Context, userID uint64, req *model.CreateDressRequest) (*model.DressEntity, error) {
	entity := &model.DressEntity{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Features:    req.Features,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		Images:      req.Images,
		Status:      constant.DressStatusActive,
		CreatedBy:   userID,
	}

	entity, err := s.dressRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateDress] err dressRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *dressAppImpl) UpdateDress(ctx context.Context, id uint64, req *model.UpdateDressRequest) (*model.DressEntity, error) {
	entity, err := s.GetDress(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Price != nil {
		entity.Price = *req.Price
	}
	if req.Category != nil {
		entity.Category = *req.Category
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.Features != nil {
		entity.Features = req.Features
	}
	if req.Sizes != nil {
		entity.Sizes = req.Sizes
	}
	if req.Colors != nil {
		entity.Colors = req.Colors
	}
	if req.Images != nil {
		entity.Images = req.Images
	}

	if err := s.dressRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateDress] err dressRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *dressAppImpl) UpdateDressStatus(ctx context.Context, id uint64, status string) (*model.DressEntity, error) {
	entity, err := s.GetDress(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.dressRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("[UpdateDressStatus] err dressRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.Status = status
	return entity, nil
}

func (s *dressAppImpl) DeleteDress(ctx context.Context, id uint64) error {
	if _, err := s.GetDress(ctx, id); err != nil {
		return err
	}

	if err := s.dressRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteDress] err dressRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Statistics builds the dashboard dress cards. Any failed sub-query fails the
// whole load; the dashboard never renders partial numbers.
func (s *dressAppImpl) Statistics(ctx context.Context) (*model.DressStatistics, error) {
	total, err := s.dressRepo.Count(ctx)
	if err != nil {
		logger.Error("[Statistics] err dressRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	active, err := s.dressRepo.CountByStatus(ctx, constant.DressStatusActive)
	if err != nil {
		logger.Error("[Statistics] err dressRepo.CountByStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalRequests, err := s.activityRepo.CountRequests(ctx)
	if err != nil {
		logger.Error("[Statistics] err activityRepo.CountRequests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalLikes, err := s.activityRepo.CountLikes(ctx)
	if err != nil {
		logger.Error("[Statistics] err activityRepo.CountLikes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	topDresses, err := s.dressRepo.TopByRequestCount(ctx, topDressesLimit)
	if err != nil {
		logger.Error("[Statistics] err dressRepo.TopByRequestCount", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.DressStatistics{
		TotalDresses:  total,
		ActiveDresses: active,
		TotalRequests: totalRequests,
		TotalLikes:    totalLikes,
		TopDresses:    topDresses,
	}, nil
}

// ApplyCounterDelta is invoked by the internal counter-sync endpoint fed by
// the activity event queue.
func (s *dressAppImpl) ApplyCounterDelta(ctx context.Context, req *model.CounterSyncRequest) error {
	dress, err := s.dressRepo.GetByID(ctx, req.DressID)
	if err != nil {
		logger.Error("[ApplyCounterDelta] err dressRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if dress == nil {
		// Dress deleted after the event was queued; nothing to sync.
		return errors.SetCustomError(constant.ErrDressNotFound)
	}

	if err := s.dressRepo.ApplyCounterDelta(ctx, req.DressID, req.LikeDelta, req.RequestDelta); err != nil {
		logger.Error("[ApplyCounterDelta] err dressRepo.ApplyCounterDelta", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
