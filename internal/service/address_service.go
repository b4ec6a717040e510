package service

import (
	"context"

	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"
)

type AddressService struct {
	addressDao *dao.AddressDao
}

func NewAddressService(addressDao *dao.AddressDao) *AddressService {
	return &AddressService{addressDao: addressDao}
}

// SaveAndUpdate stores the caller's address, replacing any previous one.
func (s *AddressService) SaveAndUpdate(ctx context.Context, userID int64, addr *model.Address) (*model.Address, error) {
	addr.UserID = userID
	if err := s.addressDao.SaveForUser(ctx, addr); err != nil {
		return nil, e.Internal(err)
	}
	return addr, nil
}
