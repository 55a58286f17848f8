package auth_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appauth "github.com/anindyaputri/dress-shop/application/auth"
	"github.com/anindyaputri/dress-shop/cmd/config"
	"github.com/anindyaputri/dress-shop/constant"
	profilemocks "github.com/anindyaputri/dress-shop/mocks/repository/profile"
	redismocks "github.com/anindyaputri/dress-shop/mocks/repository/redis"
	txmocks "github.com/anindyaputri/dress-shop/mocks/repository/tx"
	usermocks "github.com/anindyaputri/dress-shop/mocks/repository/user"
	"github.com/anindyaputri/dress-shop/model"
	cerr "github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestAuthApp_Register(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		userRepo    *usermocks.UserRepository
		profileRepo *profilemocks.ProfileRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Anindya",
					LastName:  "Putri",
					Email:     "anindya@example.com",
					Phone:     "081234567890",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				// Check email doesn't exist
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anindya@example.com"}).
					Return(nil, nil).
					Once()

				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()

				// Create user with a hashed password
				f.userRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == "anindya@example.com" && ent.PasswordHash != "" && ent.PasswordHash != "password123"
					})).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "anindya@example.com",
						PasswordHash: "hashed_password",
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				// Create profile with the default user role
				f.profileRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.ProfileEntity) bool {
						return ent.UserID == 1 &&
							ent.FirstName == "Anindya" &&
							ent.LastName == "Putri" &&
							ent.Role == constant.RoleUser
					})).
					Return(&model.ProfileEntity{
						ID:        1,
						UserID:    1,
						FirstName: "Anindya",
						LastName:  "Putri",
						Role:      constant.RoleUser,
					}, nil).
					Once()

				f.txRepo.
					On("CommitTx", mock.Anything).
					Return(nil).
					Once()
			},
			want: &model.RegisterResponse{
				Email:     "anindya@example.com",
				FirstName: "Anindya",
				LastName:  "Putri",
			},
			wantErr: false,
		},
		{
			name: "error: email already exists",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Anindya",
					Email:     "existing@example.com",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "existing@example.com"}).
					Return(&model.UserEntity{
						ID:    1,
						Email: "existing@example.com",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Anindya",
					Email:     "anindya@example.com",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anindya@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: profile create fails, tx rolled back",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					FirstName: "Anindya",
					Email:     "anindya@example.com",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anindya@example.com"}).
					Return(nil, nil).
					Once()

				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(&model.UserEntity{ID: 1, Email: "anindya@example.com"}, nil).
					Once()

				f.profileRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.ProfileEntity")).
					Return(nil, errors.New("insert failed")).
					Once()

				f.txRepo.
					On("RollbackTx", mock.Anything).
					Return(nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.txRepo, tt.fields.userRepo, tt.fields.profileRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		userRepo    *usermocks.UserRepository
		profileRepo *profilemocks.ProfileRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with existing profile",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "anindya@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anindya@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "anindya@example.com",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.profileRepo.
					On("Get", mock.Anything, &model.ProfileFilter{UserID: 1}).
					Return(&model.ProfileEntity{
						ID:        1,
						UserID:    1,
						FirstName: "Anindya",
						Role:      constant.RoleUser,
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()

				f.redisRepo.
					On("SetRole", mock.Anything, uint64(1), constant.RoleUser, time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				Email: "anindya@example.com",
			},
			wantErr: false,
		},
		{
			name: "success: first login creates default profile exactly once",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "fresh@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "fresh@example.com"}).
					Return(&model.UserEntity{
						ID:           7,
						Email:        "fresh@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()

				// No profile row yet
				f.profileRepo.
					On("Get", mock.Anything, &model.ProfileFilter{UserID: 7}).
					Return(nil, nil).
					Once()

				// Default profile created a single time
				f.profileRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ProfileEntity) bool {
						return ent.UserID == 7 &&
							ent.FirstName == "User" &&
							ent.LastName == "" &&
							ent.Role == constant.RoleUser
					})).
					Return(&model.ProfileEntity{
						ID:        3,
						UserID:    7,
						FirstName: "User",
						Role:      constant.RoleUser,
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(7), time.Hour).
					Return(nil).
					Once()

				f.redisRepo.
					On("SetRole", mock.Anything, uint64(7), constant.RoleUser, time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				Email: "fresh@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "notfound@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "notfound@example.com"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: invalid password writes nothing to the session cache",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "anindya@example.com",
					Password: "wrongpassword",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				// Only the user lookup runs; the redis mock has no expectations,
				// so any cache write fails the test.
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anindya@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "anindya@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: SetSession returns error",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "anindya@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anindya@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "anindya@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()

				f.profileRepo.
					On("Get", mock.Anything, &model.ProfileFilter{UserID: 1}).
					Return(&model.ProfileEntity{ID: 1, UserID: 1, Role: constant.RoleUser}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.txRepo, tt.fields.userRepo, tt.fields.profileRepo, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Email != tt.want.Email {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
			if got.Profile == nil {
				t.Fatal("Login() profile should not be nil")
			}
		})
	}
}

func TestAuthApp_ValidateToken(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		userRepo    *usermocks.UserRepository
		profileRepo *profilemocks.ProfileRepository
		redisRepo   *redismocks.Repository
	}

	// login produces a real signed token so ValidateToken exercises the full
	// parse path.
	login := func(t *testing.T, f fields, userID uint64) string {
		t.Helper()
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		f.userRepo.
			On("Get", mock.Anything, mock.Anything).
			Return(&model.UserEntity{ID: userID, Email: "anindya@example.com", PasswordHash: string(hashedPassword)}, nil).
			Once()
		f.profileRepo.
			On("Get", mock.Anything, &model.ProfileFilter{UserID: userID}).
			Return(&model.ProfileEntity{ID: 1, UserID: userID, Role: constant.RoleUser}, nil).
			Once()
		f.redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), userID, time.Hour).
			Return(nil).
			Once()
		f.redisRepo.
			On("SetRole", mock.Anything, userID, constant.RoleUser, time.Hour).
			Return(nil).
			Once()

		app := appauth.NewAuthApp(f.config, f.txRepo, f.userRepo, f.profileRepo, f.redisRepo)
		resp, err := app.Login(context.Background(), &model.LoginRequest{Email: "anindya@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("login for token: %v", err)
		}
		return resp.Token
	}

	tests := []struct {
		name     string
		fields   fields
		token    func(t *testing.T, f fields) string
		mockCall func(f fields)
		wantID   uint64
		wantRole string
		wantErr  bool
	}{
		{
			name: "success: valid token with cached role",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			token: func(t *testing.T, f fields) string { return login(t, f, 1) },
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, mock.AnythingOfType("string")).
					Return(uint64(1), nil).
					Once()
				f.redisRepo.
					On("GetRole", mock.Anything, uint64(1)).
					Return(constant.RoleAdmin, nil).
					Once()
			},
			wantID:   1,
			wantRole: constant.RoleAdmin,
			wantErr:  false,
		},
		{
			name: "success: role cache miss falls back to profile",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			token: func(t *testing.T, f fields) string { return login(t, f, 1) },
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, mock.AnythingOfType("string")).
					Return(uint64(1), nil).
					Once()
				f.redisRepo.
					On("GetRole", mock.Anything, uint64(1)).
					Return("", nil).
					Once()
				f.profileRepo.
					On("Get", mock.Anything, &model.ProfileFilter{UserID: 1}).
					Return(&model.ProfileEntity{ID: 1, UserID: 1, Role: constant.RoleUser}, nil).
					Once()
				f.redisRepo.
					On("SetRole", mock.Anything, uint64(1), constant.RoleUser, time.Hour).
					Return(nil).
					Once()
			},
			wantID:   1,
			wantRole: constant.RoleUser,
			wantErr:  false,
		},
		{
			name: "error: invalid token format",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			token:   func(t *testing.T, f fields) string { return "invalid.token.string" },
			wantErr: true,
		},
		{
			name: "error: session user mismatch",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			token: func(t *testing.T, f fields) string { return login(t, f, 1) },
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, mock.AnythingOfType("string")).
					Return(uint64(2), nil).
					Once()
			},
			wantErr: true,
		},
		{
			name: "error: session not found in redis",
			fields: fields{
				config:      testAuthConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				profileRepo: profilemocks.NewProfileRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			token: func(t *testing.T, f fields) string { return login(t, f, 1) },
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, mock.AnythingOfType("string")).
					Return(uint64(0), errors.New("session not found")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.token(t, tt.fields)

			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}

			app := appauth.NewAuthApp(tt.fields.config, tt.fields.txRepo, tt.fields.userRepo, tt.fields.profileRepo, tt.fields.redisRepo)

			gotID, gotRole, err := app.ValidateToken(context.Background(), tokenString)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if gotID != tt.wantID {
				t.Fatalf("ValidateToken() userID = %v, want %v", gotID, tt.wantID)
			}
			if gotRole != tt.wantRole {
				t.Fatalf("ValidateToken() role = %v, want %v", gotRole, tt.wantRole)
			}
		})
	}
}

func TestAuthApp_Logout(t *testing.T) {
	cfg := testAuthConfig()
	txRepo := txmocks.NewTxRepository(t)
	userRepo := usermocks.NewUserRepository(t)
	profileRepo := profilemocks.NewProfileRepository(t)
	redisRepo := redismocks.NewRepository(t)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.
		On("Get", mock.Anything, mock.Anything).
		Return(&model.UserEntity{ID: 1, Email: "anindya@example.com", PasswordHash: string(hashedPassword)}, nil).
		Once()
	profileRepo.
		On("Get", mock.Anything, &model.ProfileFilter{UserID: 1}).
		Return(&model.ProfileEntity{ID: 1, UserID: 1, Role: constant.RoleUser}, nil).
		Once()
	redisRepo.
		On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
		Return(nil).
		Once()
	redisRepo.
		On("SetRole", mock.Anything, uint64(1), constant.RoleUser, time.Hour).
		Return(nil).
		Once()

	app := appauth.NewAuthApp(cfg, txRepo, userRepo, profileRepo, redisRepo)
	resp, err := app.Login(context.Background(), &model.LoginRequest{Email: "anindya@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	redisRepo.
		On("DeleteSession", mock.Anything, mock.AnythingOfType("string")).
		Return(nil).
		Once()
	redisRepo.
		On("DeleteRole", mock.Anything, uint64(1)).
		Return(nil).
		Once()

	if err := app.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if err := app.Logout(context.Background(), "not-a-token"); err == nil {
		t.Fatal("Logout() with garbage token should fail")
	}
}
