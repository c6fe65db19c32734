package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/pkg/types"
)

var (
	ErrMissingID    = errors.New("missing id")
	ErrInvalidQuery = errors.New("invalid query parameter")
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func ParseIDParam(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if id == "" {
		return "", ErrMissingID
	}
	return id, nil
}

// ParseIntQuery reads a non-negative integer query parameter, returning
// fallback when it is absent.
func ParseIntQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidQuery
	}
	return n, nil
}
