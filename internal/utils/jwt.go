package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rmachado/go-auth-api/models"
)

// GenerateToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token includes the following standard claims:
//   - Issuer   (iss): identifies the service that issued the token
//   - Subject  (sub): the user ID
//   - IssuedAt (iat): the current time
//
// No expiration claim is set: issued tokens remain valid for as long as
// the sign key does. Revocation is out of scope for this service.
//
// All parameters are required. Returns an error if any of them are empty
// or if signing fails.
func GenerateToken(issuer, userID, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Subject (sub) claim presence
//
// Returns the parsed token with the UserID field populated, or an error
// if validation fails or the subject claim is missing.
func ValidateAndParseToken(tokenString, signKey, issuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, UserID: userID}, nil
}

// ParseBearerToken extracts the token segment from an Authorization
// header of the form "Bearer <token>".
//
// Only the second space-separated segment is read; anything after it is
// ignored, so a header with trailing junk still yields a token and fails
// later at signature verification rather than here.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
