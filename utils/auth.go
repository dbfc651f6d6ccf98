package utils

import (
	"time"

	"go-shopcart/models"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token lifetime from issuance, not configurable per call
const tokenLifetime = 24 * time.Hour

// Claims carried inside a signed bearer token
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// SubjectID decodes the user id claim
func (c *Claims) SubjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.UserID)
}

// TokenService signs and verifies bearer tokens with an injected
// HS256 secret
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service for the given signing secret
func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

// Generate signs a token carrying the user's identity claims
func (ts *TokenService) Generate(user models.User) (string, error) {
	claims := &Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify parses and validates a token string, rejecting tokens that
// are expired or signed with a different secret
func (ts *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return ts.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("token is not valid", jwt.ValidationErrorClaimsInvalid)
	}
	return claims, nil
}
