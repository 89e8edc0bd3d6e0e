package controllers

import (
	"context"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/idtoken"
)

// Register creates a user account. Mirrors the frontend contract: 400 when the
// password confirmation does not match or the username is taken.
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRegistration(input.Username, input.Email, input.Password, input.Password2); err != nil {
		respondAppError(c, err)
		return
	}

	if _, err := services.RegisterUser(config.DB, input.Username, input.Email, input.Password); err != nil {
		respondAppError(c, err)
		return
	}

	response.Created(c, dto.RegisterResponse{
		Message: "User registered successfully. Please log in.",
	})
}

// Token exchanges username/password for an access/refresh pair
func Token(c *gin.Context) {
	var input dto.TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.AuthenticateUser(config.DB, input.Username, input.Password)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	access, refresh, err := services.IssueTokenPair(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{Access: access, Refresh: refresh})
}

// TokenRefresh exchanges a refresh token for a new access token
func TokenRefresh(c *gin.Context) {
	var input dto.TokenRefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, err := services.GetUserIDFromRefreshToken(input.Refresh)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	access, err := services.GenerateToken(services.UserInfo{UserId: userID}, 60*24, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{Access: access})
}

// AuthGoogle signs a user in with a Google ID token, provisioning an account
// on first use.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := idtoken.Validate(context.Background(), input.Credential, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.BadRequest(c, "Google token carries no email.")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// First sign-in: provision an account with an unusable random password
		user, err = services.RegisterUser(config.DB, email, email, uuid.NewString())
		if err != nil {
			respondAppError(c, err)
			return
		}
	}

	access, refresh, err := services.IssueTokenPair(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{Access: access, Refresh: refresh})
}

// Logout clears any auth cookies. Token invalidation is client-side.
func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}
