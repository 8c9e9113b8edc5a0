// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/acmesoft/bizops-backend/internal/services"
	"github.com/acmesoft/bizops-backend/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	storageService  *services.StorageService
}

func NewSettingsHandler(settingsService *services.SettingsService, storageService *services.StorageService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		storageService:  storageService,
	}
}

// GET /api/company
func (h *SettingsHandler) GetCompanySettings(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"settings": h.settingsService.GetCompanySettings(),
	})
}

// POST /api/company
func (h *SettingsHandler) UpdateCompanySettings(c *gin.Context) {
	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid company settings data", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"settings": h.settingsService.UpdateCompanySettings(&req),
	})
}

// POST /api/company/logo
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		utils.BadRequestResponse(c, "No logo uploaded", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	result, err := h.storageService.UploadFile(file, fileHeader, h.storageService.LogoUploadOptions())
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	settings := h.settingsService.SetLogo(result.URL)

	utils.SuccessResponse(c, gin.H{
		"settings": settings,
		"upload":   result,
	})
}
