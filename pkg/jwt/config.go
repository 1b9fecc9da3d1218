package jwt

import "time"

// Config holds environment-driven token settings.
type Config struct {
	Secret string        `env:"JWT_SECRET,required"`       // HMAC signing secret shared by both services.
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`  // Token lifetime from issuance.
}
