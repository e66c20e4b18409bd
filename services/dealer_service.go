package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
)

type DealerService struct {
	validate *validator.Validate
}

func NewDealerService() *DealerService {
	return &DealerService{validate: validator.New()}
}

// Normalize trims the text fields and validates the result.
func (s *DealerService) Normalize(info models.DealerInfo) (models.DealerInfo, error) {
	info.Name = strings.TrimSpace(info.Name)
	info.INN = strings.TrimSpace(info.INN)
	info.Phone = strings.TrimSpace(info.Phone)
	if err := s.validate.Struct(&info); err != nil {
		return models.DealerInfo{}, fmt.Errorf("%w: %v", ErrInvalidDealer, err)
	}
	return info, nil
}
