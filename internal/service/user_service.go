package service

import (
	"context"
	"errors"

	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"

	"gorm.io/gorm"
)

type UserService struct {
	userDao *dao.UserDao
}

func NewUserService(userDao *dao.UserDao) *UserService {
	return &UserService{userDao: userDao}
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userDao.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound(e.ERROR_USER_NOT_EXISTS, "")
		}
		return nil, e.Internal(err)
	}
	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userDao.GetAllUsers(ctx)
	if err != nil {
		return nil, e.Internal(err)
	}
	return users, nil
}

// GetUserInfoAndOrderHistory loads the caller's profile together with address
// and order items.
func (s *UserService) GetUserInfoAndOrderHistory(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userDao.GetUserWithOrderHistory(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.NotFound(e.ERROR_USER_NOT_EXISTS, "")
		}
		return nil, e.Internal(err)
	}
	return user, nil
}
