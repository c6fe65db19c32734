package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/domain/submission"
	"github.com/linskybing/bootcamp-go/pkg/response"
	"github.com/linskybing/bootcamp-go/pkg/utils"
)

const defaultPageLimit = 100

// writeError maps service errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	var verr *submission.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidation(c, verr.Fields)
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrDuplicateEmail), errors.Is(err, application.ErrUserTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInactiveUser), errors.Is(err, application.ErrDeleteSelf):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrMediaDisabled):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}

func writeValidation(c *gin.Context, fields []submission.FieldError) {
	out := make([]response.FieldError, 0, len(fields))
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, response.FieldError{Field: f.Field, Message: f.Message})
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Error: strings.Join(msgs, "; "), Fields: out})
}

// writeBindError produces friendly validation messages for the frontend.
func writeBindError(c *gin.Context, err error, labels map[string]string) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	writeValidation(c, submission.FieldErrors(verr, labels))
}

func listQuery(c *gin.Context) (application.ListQuery, bool) {
	skip, err := utils.ParseIntQuery(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "skip must be a non-negative integer"})
		return application.ListQuery{}, false
	}
	limit, err := utils.ParseIntQuery(c, "limit", defaultPageLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "limit must be a non-negative integer"})
		return application.ListQuery{}, false
	}
	return application.ListQuery{Status: c.Query("status"), Skip: skip, Limit: limit}, true
}

func idParam(c *gin.Context) (string, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return "", false
	}
	return id, true
}
