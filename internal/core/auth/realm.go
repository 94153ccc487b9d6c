package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

type Options struct {
	ServerURL      string
	Realm          string
	RealmPublicKey string
	Leeway         time.Duration
	HTTPClient     *http.Client
}

// RealmURL is also the token issuer.
func RealmURL(serverURL, realm string) string {
	return strings.TrimRight(serverURL, "/") + "/realms/" + realm
}

// NewFromOptions builds a Verifier, downloading the realm key when none is
// configured.
func NewFromOptions(ctx context.Context, o Options) (*Verifier, error) {
	issuer := ""
	if o.ServerURL != "" && o.Realm != "" {
		issuer = RealmURL(o.ServerURL, o.Realm)
	}
	keyText := o.RealmPublicKey
	if keyText == "" {
		if issuer == "" {
			return nil, fmt.Errorf("auth: realm public key or server url and realm required")
		}
		var err error
		if keyText, err = FetchRealmKey(ctx, o.HTTPClient, issuer); err != nil {
			return nil, err
		}
	}
	key, err := ParseRealmKey(keyText)
	if err != nil {
		return nil, err
	}
	return NewVerifier(key, issuer, o.Leeway), nil
}

// FetchRealmKey reads public_key from the realm document.
func FetchRealmKey(ctx context.Context, hc *http.Client, realmURL string) (string, error) {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, realmURL, nil)
	if err != nil {
		return "", err
	}
	res, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch realm: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch realm: status %d", res.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("fetch realm: %w", err)
	}
	key := gjson.GetBytes(body, "public_key")
	if !key.Exists() || key.String() == "" {
		return "", fmt.Errorf("fetch realm: public_key missing")
	}
	return key.String(), nil
}
