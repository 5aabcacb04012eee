package controller

import (
	"biotutor_backend/internal/middleware"
	"biotutor_backend/internal/service"
	"biotutor_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	IsRelease   bool
}

func NewAuthController(authService *service.AuthService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		IsRelease:   isRelease,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new account
// @Description Creates an account for the given email. The password is stored as a bcrypt hash and never returned.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "registration payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} util.Response "missing or weak password"
// @Failure 409 {object} util.Response "email already registered"
// @Failure 500 {object} util.Response
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Email and password are required")
		return
	}

	user, err := c.AuthService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrWeakPassword):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, http.StatusConflict, "User with this email already exists")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": user})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Description Verifies credentials and issues a session token, set as an HttpOnly cookie and returned in the body. Unknown email and wrong password produce the same response.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response "invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Email and password are required")
		return
	}

	token, _, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	maxAge := int(c.AuthService.Cfg.JWT.ExpireTime.Seconds())
	ctx.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", c.IsRelease, true)

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} util.Response
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
		"lastLogin": user.LastLogin,
	})
}
