package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/crypto"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/model"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

// Claims are the JWT claims carried by an issued token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService authenticates users by email and password and issues JWTs.
type AuthService struct {
	users  *UserService
	hasher crypto.Hasher
	secret []byte
	issuer string
}

func NewAuthService(db DB, hasher crypto.Hasher, secret, issuer string) *AuthService {
	return &AuthService{
		users:  NewUserService(db, hasher),
		hasher: hasher,
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Login verifies the credentials and returns a signed token with the user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !s.hasher.Check(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// IssueToken creates a signed HS256 JWT for the given user.
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses and verifies a JWT, returning its claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}

	return claims, nil
}
