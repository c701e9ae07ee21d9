package services

import (
	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"
	"wechat_mall/internal/repository"

	"github.com/google/uuid"
)

type AddressRequest struct {
	Province     string `json:"province" binding:"required"`
	City         string `json:"city" binding:"required"`
	Address      string `json:"address" binding:"required"`
	ReceiverName string `json:"receiver_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	PostCode     string `json:"post_code" binding:"required"`
	IsDefault    bool   `json:"is_default"`
	OrderbyID    int    `json:"orderby_id"`
}

type AddressService interface {
	ListAddresses(userID uuid.UUID) ([]models.ShippingAddr, error)
	GetDefaultAddress(userID uuid.UUID) (*models.ShippingAddr, error)
	CreateAddress(userID uuid.UUID, req AddressRequest) (*models.ShippingAddr, error)
	UpdateAddress(userID uuid.UUID, id uint, req AddressRequest) (*models.ShippingAddr, error)
	RemoveAddress(userID uuid.UUID, id uint) error
}

type addressService struct {
	addrRepo repository.AddressRepository
}

func NewAddressService(addrRepo repository.AddressRepository) AddressService {
	return &addressService{addrRepo: addrRepo}
}

func (s *addressService) ListAddresses(userID uuid.UUID) ([]models.ShippingAddr, error) {
	return s.addrRepo.ListByUser(userID)
}

func (s *addressService) GetDefaultAddress(userID uuid.UUID) (*models.ShippingAddr, error) {
	return s.addrRepo.GetDefault(userID)
}

func (s *addressService) CreateAddress(userID uuid.UUID, req AddressRequest) (*models.ShippingAddr, error) {
	if req.IsDefault {
		if err := s.addrRepo.ClearDefault(userID); err != nil {
			return nil, err
		}
	}
	addr := &models.ShippingAddr{
		UserID:       userID,
		Province:     req.Province,
		City:         req.City,
		Address:      req.Address,
		ReceiverName: req.ReceiverName,
		PhoneNumber:  req.PhoneNumber,
		PostCode:     req.PostCode,
		IsDefault:    req.IsDefault,
		OrderbyID:    req.OrderbyID,
	}
	if err := s.addrRepo.Create(addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *addressService) UpdateAddress(userID uuid.UUID, id uint, req AddressRequest) (*models.ShippingAddr, error) {
	addr, err := s.ownedAddress(userID, id)
	if err != nil {
		return nil, err
	}
	if req.IsDefault && !addr.IsDefault {
		if err := s.addrRepo.ClearDefault(userID); err != nil {
			return nil, err
		}
	}
	addr.Province = req.Province
	addr.City = req.City
	addr.Address = req.Address
	addr.ReceiverName = req.ReceiverName
	addr.PhoneNumber = req.PhoneNumber
	addr.PostCode = req.PostCode
	addr.IsDefault = req.IsDefault
	addr.OrderbyID = req.OrderbyID
	if err := s.addrRepo.Update(addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *addressService) RemoveAddress(userID uuid.UUID, id uint) error {
	if _, err := s.ownedAddress(userID, id); err != nil {
		return err
	}
	return s.addrRepo.SoftDelete(id)
}

func (s *addressService) ownedAddress(userID uuid.UUID, id uint) (*models.ShippingAddr, error) {
	addr, err := s.addrRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if addr.UserID != userID {
		return nil, apperr.New(apperr.NotFound, "address_not_found", "address not found")
	}
	return addr, nil
}
