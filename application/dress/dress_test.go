package dress_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appdress "github.com/anindyaputri/dress-shop/application/dress"
	"github.com/anindyaputri/dress-shop/constant"
	activitymocks "github.com/anindyaputri/dress-shop/mocks/repository/activity"
	dressmocks "github.com/anindyaputri/dress-shop/mocks/repository/dress"
	"github.com/anindyaputri/dress-shop/model"
	cerr "github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestDressApp_GetDress(t *testing.T) {
	type fields struct {
		dressRepo    *dressmocks.DressRepository
		activityRepo *activitymocks.ActivityRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		want     *model.DressEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: dress found",
			fields: fields{
				dressRepo:    dressmocks.NewDressRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
			},
			id: 1,
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.DressEntity{ID: 1, Name: "Evening Gown", Status: constant.DressStatusActive}, nil).
					Once()
			},
			want: &model.DressEntity{ID: 1, Name: "Evening Gown", Status: constant.DressStatusActive},
		},
		{
			name: "error: dress not found",
			fields: fields{
				dressRepo:    dressmocks.NewDressRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
			},
			id: 99,
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(99)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDressNotFound,
		},
		{
			name: "error: repository error",
			fields: fields{
				dressRepo:    dressmocks.NewDressRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
			},
			id: 1,
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(nil, errors.New("db error")).
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
			app := appdress.NewDressApp(tt.fields.dressRepo, tt.fields.activityRepo)

			got, err := app.GetDress(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetDress() error = %v, wantErr %v", err, tt.wantErr)
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

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetDress() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDressApp_UpdateDress(t *testing.T) {
	dressRepo := dressmocks.NewDressRepository(t)
	activityRepo := activitymocks.NewActivityRepository(t)

	newName := "Renamed Gown"
	newPrice := 250.0

	dressRepo.
		On("GetByID", mock.Anything, uint64(1)).
		Return(&model.DressEntity{
			ID:       1,
			Name:     "Evening Gown",
			Price:    199.0,
			Category: "formal",
			Status:   constant.DressStatusActive,
		}, nil).
		Once()

	// Only the provided fields change; category keeps its stored value.
	dressRepo.
		On("Update", mock.Anything, mock.MatchedBy(func(ent *model.DressEntity) bool {
			return ent.ID == 1 && ent.Name == newName && ent.Price == newPrice && ent.Category == "formal"
		})).
		Return(nil).
		Once()

	app := appdress.NewDressApp(dressRepo, activityRepo)
	got, err := app.UpdateDress(context.Background(), 1, &model.UpdateDressRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("UpdateDress() error = %v", err)
	}
	if got.Name != newName || got.Price != newPrice || got.Category != "formal" {
		t.Fatalf("UpdateDress() = %+v", got)
	}
}

func TestDressApp_Statistics(t *testing.T) {
	type fields struct {
		dressRepo    *dressmocks.DressRepository
		activityRepo *activitymocks.ActivityRepository
	}
	topDresses := []model.DressEntity{
		{ID: 3, Name: "A", RequestCount: 10},
		{ID: 1, Name: "B", RequestCount: 4},
		{ID: 2, Name: "C", RequestCount: 4},
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.DressStatistics
		wantErr  bool
	}{
		{
			name: "success: all sub-queries succeed",
			fields: fields{
				dressRepo:    dressmocks.NewDressRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
			},
			mockCall: func(f fields) {
				f.dressRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
				f.dressRepo.On("CountByStatus", mock.Anything, constant.DressStatusActive).Return(int64(9), nil).Once()
				f.activityRepo.On("CountRequests", mock.Anything).Return(int64(31), nil).Once()
				f.activityRepo.On("CountLikes", mock.Anything).Return(int64(54), nil).Once()
				f.dressRepo.On("TopByRequestCount", mock.Anything, 5).Return(topDresses, nil).Once()
			},
			want: &model.DressStatistics{
				TotalDresses:  12,
				ActiveDresses: 9,
				TotalRequests: 31,
				TotalLikes:    54,
				TopDresses:    topDresses,
			},
		},
		{
			name: "error: one failing sub-query fails the whole load",
			fields: fields{
				dressRepo:    dressmocks.NewDressRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
			},
			mockCall: func(f fields) {
				f.dressRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
				f.dressRepo.On("CountByStatus", mock.Anything, constant.DressStatusActive).Return(int64(9), nil).Once()
				f.activityRepo.On("CountRequests", mock.Anything).Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appdress.NewDressApp(tt.fields.dressRepo, tt.fields.activityRepo)

			got, err := app.Statistics(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Statistics() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if got != nil {
					t.Fatalf("Statistics() should return no partial result, got %+v", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Statistics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDressApp_ApplyCounterDelta(t *testing.T) {
	type fields struct {
		dressRepo    *dressmocks.DressRepository
		activityRepo *activitymocks.ActivityRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CounterSyncRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: delta applied",
			fields: fields{
				dressRepo:    dressmocks.NewDressRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
			},
			req: &model.CounterSyncRequest{DressID: 1, LikeDelta: 1},
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.DressEntity{ID: 1}, nil).
					Once()
				f.dressRepo.
					On("ApplyCounterDelta", mock.Anything, uint64(1), int64(1), int64(0)).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: dress deleted after event was queued",
			fields: fields{
				dressRepo:    dressmocks.NewDressRepository(t),
				activityRepo: activitymocks.NewActivityRepository(t),
			},
			req: &model.CounterSyncRequest{DressID: 42, RequestDelta: 1},
			mockCall: func(f fields) {
				f.dressRepo.
					On("GetByID", mock.Anything, uint64(42)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDressNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appdress.NewDressApp(tt.fields.dressRepo, tt.fields.activityRepo)

			err := app.ApplyCounterDelta(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyCounterDelta() error = %v, wantErr %v", err, tt.wantErr)
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
