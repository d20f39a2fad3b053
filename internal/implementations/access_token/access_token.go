package accesstoken

import (
	"errors"
	"fmt"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/user"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const ISSUER = "petminder"

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWT issues and validates HS256 signed access tokens carrying the subject,
// its role and a token ID used for revocation.
type JWT struct {
	secret    []byte
	ttl       time.Duration
	generator c.IdentityGenerator
}

func NewJWT(secret string, ttl time.Duration, generator c.IdentityGenerator) *JWT {
	if secret == "" {
		panic(e.NewInvalidStateError("access token secret must not be empty"))
	}
	if ttl <= 0 {
		panic(e.NewInvalidStateError("access token TTL must be positive"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	return &JWT{secret: []byte(secret), ttl: ttl, generator: generator}
}

func (j *JWT) IssueToken(u user.User, now time.Time) (token user.AccessToken, result user.Claims, err error) {
	now = now.UTC().Truncate(time.Second)
	result = user.Claims{
		SubjectID: u.ID,
		Role:      u.Role,
		TokenID:   user.TokenID(j.generator.GenerateID()),
		ExpiresAt: now.Add(j.ttl),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: u.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ISSUER,
			Subject:   string(u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(result.ExpiresAt),
			ID:        string(result.TokenID),
		},
	}).SignedString(j.secret)
	if err != nil {
		return token, result, fmt.Errorf("sign access token: %w", err)
	}
	return user.AccessToken(signed), result, nil
}

func (j *JWT) ValidateToken(token user.AccessToken, now time.Time) (result user.Claims, err error) {
	raw := strings.TrimSpace(string(token))
	if raw == "" {
		return result, user.ErrInvalidAccessToken
	}

	parsed, err := jwt.ParseWithClaims(
		raw,
		&claims{},
		func(t *jwt.Token) (interface{}, error) {
			return j.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ISSUER),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return result, fmt.Errorf("%w: token expired", user.ErrInvalidAccessToken)
		}
		return result, user.ErrInvalidAccessToken
	}
	parsedClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || parsedClaims.Subject == "" || parsedClaims.ID == "" {
		return result, user.ErrInvalidAccessToken
	}
	role, err := access.ParseRole(parsedClaims.Role)
	if err != nil {
		return result, user.ErrInvalidAccessToken
	}

	return user.Claims{
		SubjectID: user.ID(parsedClaims.Subject),
		Role:      role,
		TokenID:   user.TokenID(parsedClaims.ID),
		ExpiresAt: parsedClaims.ExpiresAt.Time.UTC(),
	}, nil
}
