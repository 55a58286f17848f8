package activity_test

import (
	"context"
	"errors"
	"testing"

	appactivity "github.com/anindyaputri/dress-shop/application/activity"
	"github.com/anindyaputri/dress-shop/constant"
	activitymocks "github.com/anindyaputri/dress-shop/mocks/repository/activity"
	dressmocks "github.com/anindyaputri/dress-shop/mocks/repository/dress"
	txmocks "github.com/anindyaputri/dress-shop/mocks/repository/tx"
	"github.com/anindyaputri/dress-shop/model"
	cerr "github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/stretchr/testify/mock"
)

// The tests pass a nil publisher; publish failures only log, so the toggle
// result must not depend on the queue being up.
func TestActivityApp_ToggleLike(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		activityRepo *activitymocks.ActivityRepository
		dressRepo    *dressmocks.DressRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     bool
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: no existing like inserts one",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
				dressRepo:    dressmocks.NewDressRepository(t),
			},
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(2)).
					Return(&model.DressEntity{ID: 2}, nil).
					Once()
				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()
				f.activityRepo.
					On("LikeExistsTx", mock.Anything, mock.Anything, uint64(1), uint64(2)).
					Return(false, nil).
					Once()
				f.activityRepo.
					On("InsertLikeTx", mock.Anything, mock.Anything, uint64(1), uint64(2)).
					Return(nil).
					Once()
				f.txRepo.
					On("CommitTx", mock.Anything).
					Return(nil).
					Once()
			},
			want: true,
		},
		{
			name: "success: existing like is removed",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
				dressRepo:    dressmocks.NewDressRepository(t),
			},
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(2)).
					Return(&model.DressEntity{ID: 2}, nil).
					Once()
				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()
				f.activityRepo.
					On("LikeExistsTx", mock.Anything, mock.Anything, uint64(1), uint64(2)).
					Return(true, nil).
					Once()
				f.activityRepo.
					On("DeleteLikeTx", mock.Anything, mock.Anything, uint64(1), uint64(2)).
					Return(nil).
					Once()
				f.txRepo.
					On("CommitTx", mock.Anything).
					Return(nil).
					Once()
			},
			want: false,
		},
		{
			name: "error: dress does not exist",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
				dressRepo:    dressmocks.NewDressRepository(t),
			},
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(2)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDressNotFound,
		},
		{
			name: "error: insert fails, tx rolled back",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
				dressRepo:    dressmocks.NewDressRepository(t),
			},
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(2)).
					Return(&model.DressEntity{ID: 2}, nil).
					Once()
				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()
				f.activityRepo.
					On("LikeExistsTx", mock.Anything, mock.Anything, uint64(1), uint64(2)).
					Return(false, nil).
					Once()
				f.activityRepo.
					On("InsertLikeTx", mock.Anything, mock.Anything, uint64(1), uint64(2)).
					Return(errors.New("insert failed")).
					Once()
				f.txRepo.
					On("RollbackTx", mock.Anything).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appactivity.NewActivityApp(tt.fields.txRepo, tt.fields.activityRepo, tt.fields.dressRepo, nil)

			got, err := app.ToggleLike(context.Background(), 1, 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToggleLike() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Liked != tt.want {
				t.Fatalf("ToggleLike() liked = %v, want %v", got.Liked, tt.want)
			}
		})
	}
}

func TestActivityApp_AddComment(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	activityRepo := activitymocks.NewActivityRepository(t)
	dressRepo := dressmocks.NewDressRepository(t)

	dressRepo.
		On("GetByID", mock.Anything, uint64(2)).
		Return(&model.DressEntity{ID: 2}, nil).
		Once()
	activityRepo.
		On("InsertComment", mock.Anything, mock.MatchedBy(func(c *model.CommentEntity) bool {
			return c.DressID == 2 && c.UserID == 1 && c.Comment == "lovely"
		})).
		Return(&model.CommentEntity{ID: 9, DressID: 2, UserID: 1, Comment: "lovely"}, nil).
		Once()

	app := appactivity.NewActivityApp(txRepo, activityRepo, dressRepo, nil)
	got, err := app.AddComment(context.Background(), 1, 2, &model.AddCommentRequest{Comment: "lovely"})
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("AddComment() = %+v", got)
	}
}

func TestActivityApp_CreateRequest(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	activityRepo := activitymocks.NewActivityRepository(t)
	dressRepo := dressmocks.NewDressRepository(t)

	dressRepo.
		On("GetByID", mock.Anything, uint64(2)).
		Return(&model.DressEntity{ID: 2}, nil).
		Once()
	// New requests always start out pending
	activityRepo.
		On("InsertRequest", mock.Anything, mock.MatchedBy(func(r *model.RequestEntity) bool {
			return r.DressID == 2 && r.UserID == 1 && r.Status == constant.RequestStatusPending
		})).
		Return(&model.RequestEntity{ID: 5, DressID: 2, UserID: 1, Status: constant.RequestStatusPending}, nil).
		Once()

	app := appactivity.NewActivityApp(txRepo, activityRepo, dressRepo, nil)
	got, err := app.CreateRequest(context.Background(), 1, 2, &model.CreateDressRequestRequest{Message: "size M please"})
	if err != nil {
		t.Fatalf("CreateRequest() error = %v", err)
	}
	if got.Status != constant.RequestStatusPending {
		t.Fatalf("CreateRequest() status = %s, want %s", got.Status, constant.RequestStatusPending)
	}
}

func TestActivityApp_UpdateRequestStatus(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		activityRepo *activitymocks.ActivityRepository
		dressRepo    *dressmocks.DressRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: status updated",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
				dressRepo:    dressmocks.NewDressRepository(t),
			},
			mockCall: func(f fields) {
				f.activityRepo.
					On("GetRequestByID", mock.Anything, uint64(5)).
					Return(&model.RequestEntity{ID: 5, Status: constant.RequestStatusPending}, nil).
					Once()
				f.activityRepo.
					On("UpdateRequestStatus", mock.Anything, uint64(5), constant.RequestStatusApproved).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: request not found",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
				dressRepo:    dressmocks.NewDressRepository(t),
			},
			mockCall: func(f fields) {
				f.activityRepo.
					On("GetRequestByID", mock.Anything, uint64(5)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appactivity.NewActivityApp(tt.fields.txRepo, tt.fields.activityRepo, tt.fields.dressRepo, nil)

			err := app.UpdateRequestStatus(context.Background(), 5, constant.RequestStatusApproved)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateRequestStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
