package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"myplanetplan-api/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the subset of an identity-provider access token the API reads.
type Claims struct {
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	jwt.RegisteredClaims
}

// Actor converts verified claims into the caller identity.
func (c *Claims) Actor() domain.Actor {
	return domain.Actor{ID: c.Subject, Roles: c.RealmAccess.Roles}
}

// Verifier checks bearer tokens signed by the realm key.
type Verifier struct {
	key    *rsa.PublicKey
	issuer string
	leeway time.Duration
}

func NewVerifier(key *rsa.PublicKey, issuer string, leeway time.Duration) *Verifier {
	return &Verifier{key: key, issuer: issuer, leeway: leeway}
}

func (v *Verifier) Issuer() string { return v.issuer }

// Parse verifies signature, expiry and issuer before returning the claims.
func (v *Verifier) Parse(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}

// ParseRealmKey accepts a PEM block or the bare base64 DER body that the
// realm publishes as public_key.
func ParseRealmKey(s string) (*rsa.PublicKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty realm public key")
	}
	if !strings.HasPrefix(s, "-----BEGIN") {
		if _, err := base64.StdEncoding.DecodeString(s); err != nil {
			return nil, fmt.Errorf("realm public key: %w", err)
		}
		s = "-----BEGIN PUBLIC KEY-----\n" + s + "\n-----END PUBLIC KEY-----"
	}
	return jwt.ParseRSAPublicKeyFromPEM([]byte(s))
}
