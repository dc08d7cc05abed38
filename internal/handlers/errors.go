package handlers

import (
	"errors"
	"net/http"

	"kampala_finance_backend/internal/services"
	"kampala_finance_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondStoreError maps a store error to the API error envelope.
// action completes "Failed to ..." in the generic 500 message.
func respondStoreError(c *gin.Context, err error, action string) {
	utils.LogError(err, "Failed to "+action)

	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed.", err.Error()))
	case errors.Is(err, services.ErrInvalidBackup):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Backup file is invalid.", err.Error()))
	case errors.Is(err, services.ErrMalformedInput), errors.Is(err, services.ErrUnsupportedSchema):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Data could not be read.", err.Error()))
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Record not found.", err.Error()))
	case errors.Is(err, services.ErrDocumentAbsent):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeNotInitialized, "Data store has not been initialized.", err.Error()))
	case errors.Is(err, services.ErrConflict):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Data changed while saving, please retry.", err.Error()))
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid username or password.", ""))
	case errors.Is(err, services.ErrPermissionDenied):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Permission denied.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to "+action+".", "Internal error"))
	}
}

func respondBindError(c *gin.Context, err error) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
}
