package config

import "testing"

func TestLoadWidgetRegionValidation(t *testing.T) {
	tests := []struct {
		name    string
		region  string
		wantErr bool
	}{
		{"recognized region", "us-east", false},
		{"another recognized region", "eu-gb", false},
		{"empty region accepted", "", false},
		{"unrecognized region rejected", "mars-1", true},
		{"case matters", "US-EAST", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WIDGET_REGION", tt.region)
			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load with WIDGET_REGION=%q succeeded, want error", tt.region)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load with WIDGET_REGION=%q: %v", tt.region, err)
			}
			if cfg.Widget.Region != tt.region {
				t.Errorf("Widget.Region = %q, want %q", cfg.Widget.Region, tt.region)
			}
		})
	}
}

func TestWidgetEnabled(t *testing.T) {
	tests := []struct {
		name   string
		widget WidgetConfig
		want   bool
	}{
		{"all set", WidgetConfig{IntegrationID: "a", Region: "us-east", ServiceInstanceID: "b"}, true},
		{"missing integration id", WidgetConfig{Region: "us-east", ServiceInstanceID: "b"}, false},
		{"missing region", WidgetConfig{IntegrationID: "a", ServiceInstanceID: "b"}, false},
		{"missing instance id", WidgetConfig{IntegrationID: "a", Region: "us-east"}, false},
		{"nothing set", WidgetConfig{}, false},
	}
	for _, tt := range tests {
		if got := tt.widget.Enabled(); got != tt.want {
			t.Errorf("%s: Enabled() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadNotifyChatID(t *testing.T) {
	t.Setenv("NOTIFY_CHAT_ID", "123456")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.ChatID != 123456 {
		t.Errorf("Telegram.ChatID = %d, want 123456", cfg.Telegram.ChatID)
	}

	t.Setenv("NOTIFY_CHAT_ID", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("Load with bad NOTIFY_CHAT_ID succeeded, want error")
	}
}
