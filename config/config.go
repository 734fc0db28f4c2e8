// config/config.go
package config

import "os"

// Config holds all process-wide settings. It is loaded once at startup and
// never mutated afterwards; handlers receive it by injection.
type Config struct {
	BotToken         string // Telegram bot credential
	AdminChatID      string // chat that receives delivered invoices
	InternalAPIToken string // shared secret for X-Internal-Token

	// Sender identity printed on every invoice
	SenderName  string
	SenderPhone string

	TelegramAPIBase string // overridable for tests
	LogoPath        string // optional logo file for the invoice header
	Port            string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		BotToken:         os.Getenv("BLOSSOM_BOT_TOKEN"),
		AdminChatID:      os.Getenv("ADMIN_CHAT_ID"),
		InternalAPIToken: os.Getenv("INTERNAL_API_TOKEN"),
		SenderName:       getEnv("SENDER_NAME", "—"),
		SenderPhone:      getEnv("SENDER_PHONE", "—"),
		TelegramAPIBase:  getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
		LogoPath:         os.Getenv("INVOICE_LOGO_PATH"),
		Port:             getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
