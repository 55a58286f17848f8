package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/anindyaputri/dress-shop/cmd/config"
	"github.com/anindyaputri/dress-shop/constant"
	"github.com/anindyaputri/dress-shop/model"
	profilerepo "github.com/anindyaputri/dress-shop/repository/profile"
	redisrepo "github.com/anindyaputri/dress-shop/repository/redis"
	txrepo "github.com/anindyaputri/dress-shop/repository/tx"
	userrepo "github.com/anindyaputri/dress-shop/repository/user"
	"github.com/anindyaputri/dress-shop/utils/errors"
	"github.com/anindyaputri/dress-shop/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, string, error)
	Profile(ctx context.Context, userID uint64) (*model.ProfileEntity, error)
}

type AuthAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	userRepo    userrepo.UserRepository
	profileRepo profilerepo.ProfileRepository
	redisRepo   redisrepo.Repository
}

func NewAuthApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, profileRepo profilerepo.ProfileRepository, redisRepo redisrepo.Repository) AuthApp {
	return &AuthAppImpl{
		config:      config,
		txRepo:      txRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		redisRepo:   redisRepo,
	}
}

func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if user exists by email
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Create user and profile atomically
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Register] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	userEntity := &model.UserEntity{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	userEntity, err = s.userRepo.CreateTx(ctx, tx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	profileEntity := &model.ProfileEntity{
		UserID:    userEntity.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      constant.RoleUser,
	}
	if _, err := s.profileRepo.CreateTx(ctx, tx, profileEntity); err != nil {
		logger.Error("[Register] err profileRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Register] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.RegisterResponse{
		Email:     userEntity.Email,
		FirstName: profileEntity.FirstName,
		LastName:  profileEntity.LastName,
	}, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password. Nothing is cached before this point, so a failed
	// attempt leaves no session state behind.
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	profile, err := s.ensureProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Generate JWT token
	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Cache the role next to the session for the admin guard
	if err := s.redisRepo.SetRole(ctx, user.ID, profile.Role, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetRole", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Token:   token,
		Email:   user.Email,
		Profile: profile,
	}, nil
}

func (s *AuthAppImpl) Logout(ctx context.Context, tokenString string) error {
	userID, jti, err := s.parseToken(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, jti); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.DeleteRole(ctx, userID); err != nil {
		logger.Error("[Logout] err DeleteRole", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

// ValidateToken checks the token signature and the Redis session, then
// resolves the caller's role, lazily creating a default profile for a user
// that has none yet.
func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, string, error) {
	userID, jti, err := s.parseToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, "", fmt.Errorf("invalid or expired session")
	}

	// Compare Redis userID with claims.Subject
	if redisUserID != userID {
		return 0, "", fmt.Errorf("token does not match user session")
	}

	role, err := s.redisRepo.GetRole(ctx, userID)
	if err != nil || role == "" {
		profile, perr := s.ensureProfile(ctx, userID)
		if perr != nil {
			return 0, "", perr
		}
		role = profile.Role
		if err := s.redisRepo.SetRole(ctx, userID, role, s.config.Auth.SessionExpTime); err != nil {
			logger.Error("[ValidateToken] err SetRole", zap.String("error", err.Error()))
		}
	}

	return userID, role, nil
}

func (s *AuthAppImpl) Profile(ctx context.Context, userID uint64) (*model.ProfileEntity, error) {
	return s.ensureProfile(ctx, userID)
}

// ensureProfile fetches the profile for a user, creating the default row
// exactly once when none exists (first-ever login).
func (s *AuthAppImpl) ensureProfile(ctx context.Context, userID uint64) (*model.ProfileEntity, error) {
	profile, err := s.profileRepo.Get(ctx, &model.ProfileFilter{UserID: userID})
	if err != nil {
		logger.Error("[ensureProfile] err profileRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if profile != nil {
		return profile, nil
	}

	logger.Info("[ensureProfile] no profile found, creating default", zap.Uint64("user_id", userID))
	profile = &model.ProfileEntity{
		UserID:    userID,
		FirstName: "User",
		LastName:  "",
		Role:      constant.RoleUser,
	}
	profile, err = s.profileRepo.Create(ctx, profile)
	if err != nil {
		logger.Error("[ensureProfile] err profileRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return profile, nil
}

// parseToken verifies the signature and extracts (userID, jti).
func (s *AuthAppImpl) parseToken(tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	if claims.ID == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	return userID, claims.ID, nil
}

// generateJWT creates a JWT token for the user
func (s *AuthAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
