package service

import (
	"context"
	"errors"
	"strings"

	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"
	"github.com/venkatesh141/Ecom/pkg/logger"
	"github.com/venkatesh141/Ecom/pkg/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	userDao *dao.UserDao
	jwtUtil *utils.JWTUtil
}

func NewAuthService(userDao *dao.UserDao, jwtUtil *utils.JWTUtil) *AuthService {
	return &AuthService{
		userDao: userDao,
		jwtUtil: jwtUtil,
	}
}

// RegisterRequest carries a registration submission. Role defaults to
// CUSTOMER; only the seeder creates admins.
type RegisterRequest struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.PhoneNumber == "" {
		return nil, e.InvalidArgument("name, email, password and phone number are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userDao.UserExists(ctx, email)
	if err != nil {
		return nil, e.Internal(err)
	}
	if exists {
		return nil, e.Conflict(e.ERROR_USER_EXISTS)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, e.Internal(err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		Role:         model.RoleCustomer,
	}
	if err := s.userDao.CreateUser(ctx, user); err != nil {
		return nil, e.Internal(err)
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies the credentials and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userDao.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", e.NotFound(e.ERROR_USER_NOT_EXISTS, "")
		}
		return nil, "", e.Internal(err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, "", e.InvalidCredentials(e.ERROR_PASSWORD)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", e.Internal(err)
	}
	return user, token, nil
}

// SeedAdmin creates the bootstrap admin account when it does not exist yet.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password, phone string) error {
	if email == "" || password == "" {
		return nil
	}
	exists, err := s.userDao.UserExists(ctx, email)
	if err != nil || exists {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  phone,
		Role:         model.RoleAdmin,
	}
	if err := s.userDao.CreateUser(ctx, admin); err != nil {
		return err
	}
	logger.Info("admin user created", "email", email)
	return nil
}
