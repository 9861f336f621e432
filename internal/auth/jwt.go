package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"medguides/internal/models"
)

func parseTTL() time.Duration {
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 24 * time.Hour
}

// Sign issues an HS256 token for the given profile. The returned JTI
// identifies the server-side session row that makes the token revocable.
func Sign(userID string, role models.Role) (token string, jti string, expiresAt time.Time, err error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	jti = uuid.NewString()
	expiresAt = time.Now().Add(parseTTL())
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"jti":  jti,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tok.SignedString(key)
	return token, jti, expiresAt, err
}

func Verify(tokenStr string) (Claims, error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return Claims{}, errors.New("invalid token")
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}
	sub, _ := mapc["sub"].(string)
	role, _ := mapc["role"].(string)
	jti, _ := mapc["jti"].(string)
	return Claims{Subject: sub, Role: models.ParseRole(role), JWTID: jti}, nil
}
