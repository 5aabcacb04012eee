package service

import (
	"biotutor_backend/internal/config"
	"biotutor_backend/internal/model"
	"biotutor_backend/internal/repository"
	"biotutor_backend/internal/util"
	"biotutor_backend/pkg/logger"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register creates an account for a lower-cased email. The duplicate
// pre-check can lose a race to a concurrent insert; the unique index
// violation at insert time is reported as the same duplicate error.
func (s *AuthService) Register(name, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(password) < 6 {
		return nil, util.ErrWeakPassword
	}

	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cost := s.Cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and mints a session token. Unknown email,
// missing stored hash and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, err
		}
		return "", nil, util.ErrInvalidCredentials
	}

	if user.Password == "" {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to update last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
