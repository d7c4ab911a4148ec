package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Practice PracticeConfig `mapstructure:"practice"`
	Review   ReviewConfig   `mapstructure:"review"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// Add other DB settings as needed (e.g., pool size)
}

// CatalogConfig controls where the vocabulary catalog is loaded from.
// An empty path selects the catalog compiled into the binary.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// PracticeConfig carries the tuning constants of the pronunciation scoring
// pipeline. The defaults match the scoring the mobile clients were tuned
// against; changing them changes every score and tier the API returns.
type PracticeConfig struct {
	AlternativeScore   int     `mapstructure:"alternative_score" validate:"gte=0,lte=100"`
	ContainsFloor      int     `mapstructure:"contains_floor" validate:"gte=0,lte=100"`
	ContainedFloor     int     `mapstructure:"contained_floor" validate:"gte=0,lte=100"`
	MinContainedLength int     `mapstructure:"min_contained_length" validate:"gte=0"`
	GoodThreshold      int     `mapstructure:"good_threshold" validate:"gte=0,lte=100"`
	CloseThreshold     int     `mapstructure:"close_threshold" validate:"gte=0,lte=100"`
	TryAgainThreshold  int     `mapstructure:"try_again_threshold" validate:"gte=0,lte=100"`
	PhoneticThreshold  float64 `mapstructure:"phonetic_threshold" validate:"gte=0,lte=1"`
}

// ReviewConfig carries the spaced repetition schedule settings.
// IntervalDays holds one entry per knowledge level, lowest level first.
type ReviewConfig struct {
	IntervalDays []int `mapstructure:"interval_days" validate:"required,min=6,max=6,dive,gte=0"`
	PassRating   int   `mapstructure:"pass_rating" validate:"required,gte=1,lte=5"`
}
