// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Booking  BookingConfig  `mapstructure:"booking"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // seconds
}

// DeliveryConfig holds the outbound delivery provider settings.
// FromNumber is a hard precondition for SMS dispatch; the relay refuses
// to compose messages without it.
type DeliveryConfig struct {
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
	SMS struct {
		FromNumber string `mapstructure:"from_number"`
		SenderID   string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
}

// BookingConfig holds reservation business settings.
type BookingConfig struct {
	CarSeatRate int `mapstructure:"car_seat_rate"` // USD per child car seat
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
