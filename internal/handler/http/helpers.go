package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/handler/http/dto"
	"courseadmin/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// ParsePagination reads the page and limit query parameters. Missing or
// non-numeric values come back as zero and fall back to the defaults in the
// usecase layer.
func ParsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	return page, limit
}

// HandleUseCaseError maps usecase sentinel errors onto HTTP statuses.
func HandleUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrDuplicateLesson),
		errors.Is(err, usecase.ErrAlreadyEnrolled),
		errors.Is(err, usecase.ErrAlreadyInCart),
		errors.Is(err, usecase.ErrEmailInUse):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	}
}
