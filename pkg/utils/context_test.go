package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetUserIDFromContext(t *testing.T) {
	c := newContext("/")
	_, err := GetUserIDFromContext(c)
	assert.Error(t, err)

	c.Set("claims", &types.Claims{UserID: "u-1"})
	id, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)

	c.Set("claims", "bogus")
	_, err = GetClaimsFromContext(c)
	assert.Error(t, err)
}

func TestParseIntQuery(t *testing.T) {
	c := newContext("/?limit=7&skip=-1&bad=x")

	n, err := ParseIntQuery(c, "limit", 5)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = ParseIntQuery(c, "missing", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = ParseIntQuery(c, "skip", 0)
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = ParseIntQuery(c, "bad", 0)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestParseIDParam(t *testing.T) {
	c := newContext("/")
	_, err := ParseIDParam(c, "id")
	assert.ErrorIs(t, err, ErrMissingID)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}
