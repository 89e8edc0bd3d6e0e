package services

import (
	"strings"
	"time"

	"stayhub/config"
	"stayhub/errors"
	"stayhub/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func accessSecret() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

func refreshSecret() []byte {
	return []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GenerateToken issues a signed HS256 token for userInfo. Access and refresh
// tokens are signed with separate secrets.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = accessSecret()
	} else {
		secretKeyToUse = refreshSecret()
	}

	return token.SignedString(secretKeyToUse)
}

// RegisterUser creates a user account with a hashed password. The username
// unique constraint surfaces duplicates as ErrCodeUserExists.
func RegisterUser(db *gorm.DB, username, email, password string) (models.User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Could not hash password", err)
	}

	user := models.User{
		Username: strings.TrimSpace(username),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashed,
	}

	if err := db.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return models.User{}, errors.NewAppError(errors.ErrCodeUserExists, "A user with that username already exists.", err)
		}
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Could not create user", err)
	}

	return user, nil
}

// AuthenticateUser checks a username/password pair and returns the user
func AuthenticateUser(db *gorm.DB, username, password string) (models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserNotFound, "No active account found with the given credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "No active account found with the given credentials", err)
	}

	return user, nil
}

// IssueTokenPair returns an access/refresh token pair for a user
func IssueTokenPair(userID uint) (string, string, error) {
	userInfo := UserInfo{UserId: userID}

	accessToken, err := GenerateToken(userInfo, 60*24, true)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := GenerateToken(userInfo, 60*24*7, false)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
