package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string        `mapstructure:"PORT"`
	DBUrl        string        `mapstructure:"DB_URL"`
	JWTSecret    string        `mapstructure:"JWT_SECRET"`
	JWTExpiry    time.Duration `mapstructure:"JWT_EXPIRY"`
	OTPDebugEcho bool          `mapstructure:"OTP_DEBUG_ECHO"` // dev only: echo the code in the issue response
	UploadDir    string        `mapstructure:"UPLOAD_DIR"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
}

func LoadConfig() Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("JWT_EXPIRY", 24*time.Hour)
	viper.SetDefault("OTP_DEBUG_ECHO", false)
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, using env variables only")
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal("config unmarshal error:", err)
	}

	if c.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		log.Fatal("JWT_SECRET must be at least 32 bytes")
	}

	return c
}
