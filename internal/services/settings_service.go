// internal/services/settings_service.go
package services

import (
	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

type SettingsService struct {
	store *store.MemStore
}

func NewSettingsService(store *store.MemStore) *SettingsService {
	return &SettingsService{store: store}
}

type UpdateSettingsRequest struct {
	Name           *string   `json:"name" validate:"omitempty,max=255"`
	Logo           *string   `json:"logo"`
	PrimaryColor   *string   `json:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor *string   `json:"secondaryColor" validate:"omitempty,hexcolor"`
	Modules        *[]string `json:"modules"`
}

func (s *SettingsService) GetCompanySettings() models.CompanySettings {
	return s.store.GetCompanySettings()
}

func (s *SettingsService) UpdateCompanySettings(req *UpdateSettingsRequest) models.CompanySettings {
	return s.store.UpdateCompanySettings(models.SettingsPatch{
		Name:           req.Name,
		Logo:           req.Logo,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Modules:        req.Modules,
	})
}

// SetLogo records an uploaded logo URL on the settings singleton.
func (s *SettingsService) SetLogo(url string) models.CompanySettings {
	return s.store.UpdateCompanySettings(models.SettingsPatch{Logo: &url})
}
