package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	SRS      SRSConfig      `mapstructure:"srs" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication settings. This service only validates
// tokens minted by the auth service; it never issues sessions itself.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
}

// SRSConfig contains the tunable scheduling constants. The defaults match
// srs.NewDefaultParams; overriding them here changes scheduling for the
// whole deployment.
type SRSConfig struct {
	// MasteryStabilityDays is the stability beyond which a review-state
	// word is considered mastered.
	MasteryStabilityDays float64 `mapstructure:"mastery_stability_days" validate:"required,gt=0"`

	// DesiredRetention is the recall probability targeted when converting
	// stability into a review interval.
	DesiredRetention float64 `mapstructure:"desired_retention" validate:"required,gt=0,lt=1"`

	// RelearnMinutes is how soon a lapsed word comes back up for review.
	RelearnMinutes int `mapstructure:"relearn_minutes" validate:"required,gt=0"`
}
