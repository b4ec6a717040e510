package dao

import (
	"context"

	"github.com/venkatesh141/Ecom/internal/model"

	"gorm.io/gorm"
)

type UserDao struct {
	db *gorm.DB
}

func NewUserDao(db *gorm.DB) *UserDao {
	return &UserDao{db: db}
}

// CreateUser inserts a new user row.
func (dao *UserDao) CreateUser(ctx context.Context, user *model.User) error {
	return dao.db.WithContext(ctx).Create(user).Error
}

// GetUserByID fetches a user by primary key.
func (dao *UserDao) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a user by unique email.
func (dao *UserDao) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserExists checks whether an email is already registered.
func (dao *UserDao) UserExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAllUsers returns every registered user.
func (dao *UserDao) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := dao.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

// GetUserWithOrderHistory loads a user together with their address and order
// items (product included on each item).
func (dao *UserDao) GetUserWithOrderHistory(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := dao.db.WithContext(ctx).
		Preload("Address").
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id DESC")
		}).
		Preload("OrderItems.Product").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
