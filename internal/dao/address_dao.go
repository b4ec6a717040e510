package dao

import (
	"context"
	"errors"

	"github.com/venkatesh141/Ecom/internal/model"

	"gorm.io/gorm"
)

type AddressDao struct {
	db *gorm.DB
}

func NewAddressDao(db *gorm.DB) *AddressDao {
	return &AddressDao{db: db}
}

// SaveForUser inserts the user's address or overwrites the existing one.
// A user has at most one address.
func (dao *AddressDao) SaveForUser(ctx context.Context, addr *model.Address) error {
	var existing model.Address
	err := dao.db.WithContext(ctx).Where("user_id = ?", addr.UserID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dao.db.WithContext(ctx).Create(addr).Error
		}
		return err
	}

	addr.ID = existing.ID
	addr.CreatedAt = existing.CreatedAt
	return dao.db.WithContext(ctx).Save(addr).Error
}

func (dao *AddressDao) GetByUserID(ctx context.Context, userID int64) (*model.Address, error) {
	var addr model.Address
	err := dao.db.WithContext(ctx).Where("user_id = ?", userID).First(&addr).Error
	if err != nil {
		return nil, err
	}
	return &addr, nil
}
