package token

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Config struct {
	// Secret is the HS256 signing secret.
	Secret string

	// TTL is the fixed validity window set at issuance. Tokens are not
	// renewable; after TTL the client must request a new one.
	TTL time.Duration

	Issuer string
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func New(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrConfig{Msg: "Secret is required"}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Hour
	}

	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
	}, nil
}

// Issue signs the caller-supplied claims with the fixed expiry window.
// The claims must include a non-empty "email" string; everything else is
// passed through opaque.
func (m *Manager) Issue(claims map[string]any) (string, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrInvalidClaims{Reason: "email is required"}
	}

	now := time.Now()

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(m.ttl).Unix()
	if m.issuer != "" {
		mc["iss"] = m.issuer
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", ErrConfig{Msg: "signing failed: " + err.Error()}
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the decoded claims.
// This is the single synchronous verification operation; there is no
// callback variant.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var claims Claims

	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidClaims{Reason: "unexpected signing method"}
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	if !tok.Valid {
		return nil, ErrInvalidToken{Err: jwt.ErrTokenUnverifiable}
	}
	if claims.Email == "" {
		return nil, ErrInvalidClaims{Reason: "email claim missing"}
	}

	return &claims, nil
}

// TTL returns the configured validity window.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
