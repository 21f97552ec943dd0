package configs

import "time"

// DefaultJWTSecret matches the envDefault below. Tokens signed with it can
// be forged by anyone who has read this file.
const DefaultJWTSecret = "fallback-secret"

// Auth configures issuing and verifying access tokens.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"fallback-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// InsecureSecret reports whether no signing secret was configured.
func (a Auth) InsecureSecret() bool {
	return a.JWTSecret == DefaultJWTSecret
}
