package services

import (
	"stayhub/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken verifies an access token and extracts the user ID
func GetUserIDFromToken(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return accessSecret(), nil
	})
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired token", err)
	}

	if !token.Valid {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}

	if claims.UserInfo.UserId == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token carries no user info", nil)
	}

	return claims.UserInfo.UserId, nil
}

// GetUserIDFromRefreshToken verifies a refresh token and extracts the user ID
func GetUserIDFromRefreshToken(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return refreshSecret(), nil
	})
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired refresh token", err)
	}

	if !token.Valid || claims.UserInfo.UserId == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid refresh token", nil)
	}

	return claims.UserInfo.UserId, nil
}
