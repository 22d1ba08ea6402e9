package controllers

import (
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/config"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/middleware"
)

// AuthController handles registration, login, and the current-user endpoint.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type registerInput struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// tokenCookieMaxAge matches the JWT lifetime (24h).
const tokenCookieMaxAge = 24 * 60 * 60

func setTokenCookie(c *ctx.Context, token string) {
	secure := config.AppEnv() == "production" || config.AppEnv() == "prod"
	c.SetCookie(middleware.TokenCookie, token, tokenCookieMaxAge, "/", "", secure, true)
}

// Register creates an account and signs the user in.
func (a *AuthController) Register(c *ctx.Context) {
	var in registerInput
	if !c.BindJSON(&in) {
		return
	}

	user, token, err := a.service.Register(in.Name, in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}

	setTokenCookie(c, token)
	c.Created(user)
}

// Login verifies credentials and sets the token cookie.
func (a *AuthController) Login(c *ctx.Context) {
	var in loginInput
	if !c.BindJSON(&in) {
		return
	}

	user, token, err := a.service.Login(in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}

	setTokenCookie(c, token)
	c.Success(map[string]interface{}{"user": user, "token": token})
}

// Logout clears the token cookie.
func (a *AuthController) Logout(c *ctx.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.Success(map[string]string{"message": "Logged out"})
}

// Me returns the authenticated user.
func (a *AuthController) Me(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	user, err := a.service.Me(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(user)
}
