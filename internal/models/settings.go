// internal/models/settings.go
package models

// CompanySettings is a singleton record with a fixed id of 1. It is
// replaced in place by merge updates and never deleted.
type CompanySettings struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Logo           string   `json:"logo"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	Modules        []string `json:"modules"`
}

type SettingsPatch struct {
	Name           *string   `json:"name"`
	Logo           *string   `json:"logo"`
	PrimaryColor   *string   `json:"primaryColor"`
	SecondaryColor *string   `json:"secondaryColor"`
	Modules        *[]string `json:"modules"`
}
