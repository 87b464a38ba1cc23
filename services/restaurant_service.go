package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/repository"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) Get() (*entity.Restaurant, error) {
	rest, err := s.Repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant not found", ErrNotFound)
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Update(rest *entity.Restaurant) error {
	if rest.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	// The settings blob has its own endpoints; carry it over untouched.
	if rest.Settings == "" {
		if raw, err := s.Repo.GetSettings(); err == nil {
			rest.Settings = raw
		}
	}
	return s.Repo.Upsert(rest)
}

// Settings are a free-form JSON object owned by the admin frontend.
func (s *RestaurantService) GetSettings() (map[string]any, error) {
	raw, err := s.Repo.GetSettings()
	if err != nil {
		return nil, err
	}

	settings := map[string]any{}
	if raw != "" {
		// A corrupt blob degrades to empty settings rather than an error.
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			return map[string]any{}, nil
		}
	}
	return settings, nil
}

func (s *RestaurantService) UpdateSettings(settings map[string]any) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: settings must be a JSON object", ErrValidation)
	}
	return s.Repo.SaveSettings(string(raw))
}
