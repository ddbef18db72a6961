package handlers

import (
	"errors"
	"net/http"

	"parkwise/services/parking"
	usersvc "parkwise/services/user"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates service-level errors into HTTP status codes and the
// stable {success:false, error} shape. Anything unrecognized is an internal
// error: logged in full, surfaced generically.
func respondError(c *gin.Context, err error) {
	status, message := statusForError(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, utils.ErrorResponse{Error: message})
		return
	}
	utils.JSONError(c, status, message)
}

func statusForError(err error) (int, string) {
	var (
		validationErr     parking.ValidationError
		notFoundErr       parking.NotFoundError
		notAvailableErr   parking.NotAvailableError
		occupiedErr       parking.OccupiedError
		duplicateSlotErr  parking.DuplicateNumberError
		userValidationErr usersvc.ValidationError
		userNotFoundErr   usersvc.NotFoundError
		duplicateUserErr  usersvc.DuplicateEmailError
		badCredentialsErr usersvc.InvalidCredentialsError
		inactiveErr       usersvc.InactiveAccountError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &notAvailableErr):
		return http.StatusBadRequest, notAvailableErr.Error()
	case errors.As(err, &occupiedErr):
		return http.StatusBadRequest, occupiedErr.Error()
	case errors.As(err, &duplicateSlotErr):
		return http.StatusConflict, duplicateSlotErr.Error()
	case errors.As(err, &userValidationErr):
		return http.StatusBadRequest, userValidationErr.Error()
	case errors.As(err, &userNotFoundErr):
		return http.StatusNotFound, userNotFoundErr.Error()
	case errors.As(err, &duplicateUserErr):
		return http.StatusConflict, duplicateUserErr.Error()
	case errors.As(err, &badCredentialsErr):
		return http.StatusUnauthorized, badCredentialsErr.Error()
	case errors.As(err, &inactiveErr):
		return http.StatusForbidden, inactiveErr.Error()
	}
	return http.StatusInternalServerError, "Internal server error. Please try again later."
}
