package mongo

import "time"

// Config holds the environment-driven MongoDB connection settings shared by
// the user and booking services.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // Connection string, e.g. mongodb://localhost:27017
	Database        string        `env:"MONGODB_DATABASE" envDefault:"stayhub"`        // Database name.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // Timeout for establishing the initial connection.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // Maximum connections in the driver pool.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // Minimum connections kept open.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // Idle time before a pooled connection is closed.
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`       // Retry write operations on transient failures.
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // Retry read operations on transient failures.
	ConnectAttempts int           `env:"MONGODB_CONNECT_ATTEMPTS" envDefault:"3"`      // Connection attempts before giving up at startup.
	ConnectInterval time.Duration `env:"MONGODB_CONNECT_INTERVAL" envDefault:"5s"`     // Wait between connection attempts.
}
