package controllers

import (
	"errors"
	"net/http"

	"bitbucket.org/mmdatafocus/profit_backend/models"
	"bitbucket.org/mmdatafocus/profit_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgServerError = "Lỗi server"
	msgInvalidBody = "Dữ liệu gửi lên không hợp lệ"
)

// Every response is wrapped in {success, data, count?, warning?, message?}.
// Errors always carry success:false and a human-readable message.

func respondServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": msgServerError,
		"error":   err.Error(),
	})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondModelError maps a model error onto the envelope: validation
// failures are 400, unresolved ids are 404, everything else is a 500
// echoing the underlying error.
func respondModelError(c *gin.Context, err error, notFoundMessage string) {
	var ve *utils.ValidationError
	switch {
	case errors.As(err, &ve):
		respondMessage(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, utils.ErrorRecordNotFound):
		respondMessage(c, http.StatusNotFound, notFoundMessage)
	default:
		respondServerError(c, err)
	}
}

// bindErrorMessage turns a ShouldBindJSON failure into the message the
// form expects. Only Name carries a binding rule; anything else is a
// malformed payload.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Name" && fe.Tag() == "required" {
				return models.MsgNameRequired
			}
		}
	}
	return msgInvalidBody
}
