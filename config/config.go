package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Telegram TelegramConfig
	Widget   WidgetConfig
}

type DBConfig struct {
	Path string
}

type HTTPConfig struct {
	Addr string
}

type TelegramConfig struct {
	Token  string // token for sending new-order notifications to the operator
	ChatID int64  // operator chat receiving the notifications
}

// WidgetConfig identifies the hosted chat widget injected into every
// page. All three values must be set for the widget to render.
type WidgetConfig struct {
	IntegrationID     string
	Region            string
	ServiceInstanceID string
}

// widgetRegions are the deployment regions the widget host recognizes.
var widgetRegions = map[string]bool{
	"us-south": true,
	"us-east":  true,
	"eu-gb":    true,
	"eu-de":    true,
	"au-syd":   true,
	"jp-tok":   true,
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	chatID := int64(0)
	if v := os.Getenv("NOTIFY_CHAT_ID"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("NOTIFY_CHAT_ID must be an integer: %w", err)
		}
		chatID = parsed
	}

	cfg := &Config{
		DB: DBConfig{
			Path: getEnv("DB_PATH", "brewtalk.db"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Telegram: TelegramConfig{
			Token:  getEnv("NOTIFY_TOKEN", ""),
			ChatID: chatID,
		},
		Widget: WidgetConfig{
			IntegrationID:     getEnv("WIDGET_INTEGRATION_ID", ""),
			Region:            getEnv("WIDGET_REGION", ""),
			ServiceInstanceID: getEnv("WIDGET_SERVICE_INSTANCE_ID", ""),
		},
	}

	if cfg.Widget.Region != "" && !widgetRegions[cfg.Widget.Region] {
		return nil, fmt.Errorf("WIDGET_REGION %q is not a recognized region", cfg.Widget.Region)
	}

	return cfg, nil
}

// Enabled reports whether the widget is fully configured.
func (w WidgetConfig) Enabled() bool {
	return w.IntegrationID != "" && w.Region != "" && w.ServiceInstanceID != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
