package activity

import (
	"context"
	"time"

	"github.com/anindyaputri/dress-shop/constant"
	"github.com/anindyaputri/dress-shop/model"
	activityrepo "github.com/anindyaputri/dress-shop/repository/activity"
	dressrepo "github.com/anindyaputri/dress-shop/repository/dress"
	txrepo "github.com/anindyaputri/dress-shop/repository/tx"
	"github.com/anindyaputri/dress-shop/thirdparty/rabbitmq"
	"github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/anindyaputri/dress-shop/utils/logger"
	"go.uber.org/zap"
)

type ActivityApp interface {
	ToggleLike(ctx context.Context, userID, dressID uint64) (*model.ToggleLikeResponse, error)
	LikeStatus(ctx context.Context, userID, dressID uint64) (*model.ToggleLikeResponse, error)
	AddComment(ctx context.Context, userID, dressID uint64, req *model.AddCommentRequest) (*model.CommentEntity, error)
	ListComments(ctx context.Context, dressID uint64) ([]model.CommentWithAuthor, error)
	CreateRequest(ctx context.Context, userID, dressID uint64, req *model.CreateDressRequestRequest) (*model.RequestEntity, error)
	ListRequests(ctx context.Context) ([]model.RequestWithDetails, error)
	UpdateRequestStatus(ctx context.Context, requestID uint64, status string) error
}

type activityAppImpl struct {
	txRepo       txrepo.TxRepository
	activityRepo activityrepo.ActivityRepository
	dressRepo    dressrepo.DressRepository
	publisher    *rabbitmq.Publisher
}

func NewActivityApp(txRepo txrepo.TxRepository, activityRepo activityrepo.ActivityRepository, dressRepo dressrepo.DressRepository, publisher *rabbitmq.Publisher) ActivityApp {
	return &activityAppImpl{txRepo: txRepo, activityRepo: activityRepo, dressRepo: dressRepo, publisher: publisher}
}

// ToggleLike flips the caller's like on a dress: an existing like is removed,
// otherwise one is inserted. The check and write share a transaction so two
// rapid toggles cannot leave duplicate rows.
func (s *activityAppImpl) ToggleLike(ctx context.Context, userID, dressID uint64) (*model.ToggleLikeResponse, error) {
	if err := s.checkDressExists(ctx, dressID); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ToggleLike] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	exists, err := s.activityRepo.LikeExistsTx(ctx, tx, userID, dressID)
	if err != nil {
		logger.Error("[ToggleLike] like exists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if exists {
		if err := s.activityRepo.DeleteLikeTx(ctx, tx, userID, dressID); err != nil {
			logger.Error("[ToggleLike] delete like", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		if err := s.activityRepo.InsertLikeTx(ctx, tx, userID, dressID); err != nil {
			logger.Error("[ToggleLike] insert like", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ToggleLike] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	event := rabbitmq.EventLikeAdded
	if exists {
		event = rabbitmq.EventLikeRemoved
	}
	s.publishActivity(event, dressID, userID)

	return &model.ToggleLikeResponse{Liked: !exists}, nil
}

func (s *activityAppImpl) LikeStatus(ctx context.Context, userID, dressID uint64) (*model.ToggleLikeResponse, error) {
	liked, err := s.activityRepo.LikeExists(ctx, userID, dressID)
	if err != nil {
		logger.Error("[LikeStatus] err activityRepo.LikeExists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ToggleLikeResponse{Liked: liked}, nil
}

func (s *activityAppImpl) AddComment(ctx context.Context, userID, dressID uint64, req *model.AddCommentRequest) (*model.CommentEntity, error) {
	if err := s.checkDressExists(ctx, dressID); err != nil {
		return nil, err
	}

	comment := &model.CommentEntity{
		DressID: dressID,
		UserID:  userID,
		Comment: req.Comment,
	}
	comment, err := s.activityRepo.InsertComment(ctx, comment)
	if err != nil {
		logger.Error("[AddComment] err activityRepo.InsertComment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return comment, nil
}

func (s *activityAppImpl) ListComments(ctx context.Context, dressID uint64) ([]model.CommentWithAuthor, error) {
	comments, err := s.activityRepo.ListCommentsByDress(ctx, dressID)
	if err != nil {
		logger.Error("[ListComments] err activityRepo.ListCommentsByDress", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return comments, nil
}

func (s *activityAppImpl) CreateRequest(ctx context.Context, userID, dressID uint64, req *model.CreateDressRequestRequest) (*model.RequestEntity, error) {
	if err := s.checkDressExists(ctx, dressID); err != nil {
		return nil, err
	}

	request := &model.RequestEntity{
		DressID: dressID,
		UserID:  userID,
		Status:  constant.RequestStatusPending,
		Message: req.Message,
	}
	request, err := s.activityRepo.InsertRequest(ctx, request)
	if err != nil {
		logger.Error("[CreateRequest] err activityRepo.InsertRequest", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishActivity(rabbitmq.EventRequestCreated, dressID, userID)

	return request, nil
}

func (s *activityAppImpl) ListRequests(ctx context.Context) ([]model.RequestWithDetails, error) {
	requests, err := s.activityRepo.ListRequests(ctx)
	if err != nil {
		logger.Error("[ListRequests] err activityRepo.ListRequests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return requests, nil
}

func (s *activityAppImpl) UpdateRequestStatus(ctx context.Context, requestID uint64, status string) error {
	request, err := s.activityRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		logger.Error("[UpdateRequestStatus] err activityRepo.GetRequestByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if request == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.activityRepo.UpdateRequestStatus(ctx, requestID, status); err != nil {
		logger.Error("[UpdateRequestStatus] err activityRepo.UpdateRequestStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *activityAppImpl) checkDressExists(ctx context.Context, dressID uint64) error {
	dress, err := s.dressRepo.GetByID(ctx, dressID)
	if err != nil {
		logger.Error("[checkDressExists] err dressRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if dress == nil {
		return errors.SetCustomError(constant.ErrDressNotFound)
	}
	return nil
}

// publishActivity emits a counter-sync event. Publish failures only log; the
// write already committed and the counters are allowed to lag.
func (s *activityAppImpl) publishActivity(event string, dressID, userID uint64) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.ActivityEventMessage{
		Event:     event,
		DressID:   dressID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.PublishActivityEvent(msg); err != nil {
		logger.Error("[publishActivity] publish event", zap.String("event", event), zap.String("error", err.Error()))
	}
}
