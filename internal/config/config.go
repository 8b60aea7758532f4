package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Receipt   ReceiptConfig
	Printer   PrinterConfig
	Udhari    UdhariConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// StoreConfig locates the local JSON records.
type StoreConfig struct {
	DataDir string
}

// ReceiptConfig is the restaurant header printed on receipts and
// statements.
type ReceiptConfig struct {
	StoreName string
	Address   string
	Phone     string
	Width     int // characters per line: 32 for 58mm paper, 48 for 80mm
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
}

// UdhariConfig tunes credit-ledger extras.
type UdhariConfig struct {
	// ReminderCountryCode prefixes customer phones in WhatsApp
	// reminder links, e.g. "91".
	ReminderCountryCode string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "dhaba-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("STORE_DATA_DIR", "./data")
	viper.SetDefault("RECEIPT_STORE_NAME", "Sakshi Dhaba")
	viper.SetDefault("RECEIPT_ADDRESS", "")
	viper.SetDefault("RECEIPT_PHONE", "")
	viper.SetDefault("RECEIPT_WIDTH", 32)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("UDHARI_REMINDER_COUNTRY_CODE", "91")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Store: StoreConfig{
			DataDir: viper.GetString("STORE_DATA_DIR"),
		},
		Receipt: ReceiptConfig{
			StoreName: viper.GetString("RECEIPT_STORE_NAME"),
			Address:   viper.GetString("RECEIPT_ADDRESS"),
			Phone:     viper.GetString("RECEIPT_PHONE"),
			Width:     viper.GetInt("RECEIPT_WIDTH"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Udhari: UdhariConfig{
			ReminderCountryCode: viper.GetString("UDHARI_REMINDER_COUNTRY_CODE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
