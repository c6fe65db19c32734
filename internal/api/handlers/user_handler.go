package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/api/middleware"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/config"
	"github.com/linskybing/bootcamp-go/internal/domain/user"
	"github.com/linskybing/bootcamp-go/pkg/response"
	"github.com/linskybing/bootcamp-go/pkg/utils"
)

var userLabels = map[string]string{
	"Username": "username",
	"Password": "password",
	"Email":    "email",
	"FullName": "full_name",
}

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Login godoc
// @Summary Obtain an access token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} response.TokenResponse "Bearer token and user profile"
// @Failure 400 {object} response.ErrorResponse "Invalid input or inactive user"
// @Failure 401 {object} response.ErrorResponse "Incorrect username or password"
// @Router /auth/token [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		writeBindError(c, err, userLabels)
		return
	}

	usr, token, err := h.svc.Login(input.Username, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	ttl := h.svc.TokenTTL()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(ttl.Seconds()), "/", "", config.IsProduction, true)

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		User:        usr,
	})
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := middleware.RevokeToken(c, claims); err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie("token", "", -1, "/", "", config.IsProduction, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	id, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	usr, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "user no longer exists"})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// List godoc
// @Summary List staff accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} user.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	users, err := h.svc.List(q.Skip, q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}
	c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary Create a staff account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "Account"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username or email taken"
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err, userLabels)
		return
	}
	usr, err := h.svc.Create(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// Get godoc
// @Summary Get a staff account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	usr, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// Update godoc
// @Summary Update a staff account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body user.UpdateUserInput true "Fields to change"
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input user.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err, userLabels)
		return
	}
	usr, err := h.svc.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// Delete godoc
// @Summary Delete a staff account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Cannot delete yourself"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.Delete(id, actor); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}
