package auth

import "time"

// DefaultIssuer is the iss claim of session tokens.
const DefaultIssuer = "medcore-clinic"

// Config holds session token configuration
type Config struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	// LoginDelay is slept before every credential check.
	LoginDelay time.Duration
}

func (c Config) issuer() string {
	if c.Issuer == "" {
		return DefaultIssuer
	}
	return c.Issuer
}

func (c Config) ttl() time.Duration {
	if c.TTL <= 0 {
		return 12 * time.Hour
	}
	return c.TTL
}
