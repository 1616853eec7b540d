package web

import (
	"net/http/httptest"
	"strings"
	"testing"

	"brewtalk/config"
)

func TestNormalizeItemName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"latte", "Latte"},
		{"  iced latte  ", "Iced Latte"},
		{"GRILLED CHEESE SANDWICH", "Grilled Cheese Sandwich"},
		{"croissant au beurre", "Croissant Au Beurre"},
		{"Latte", "Latte"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeItemName(tt.in); got != tt.want {
			t.Errorf("NormalizeItemName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	setFlash(rec, "Order placed successfully! Total: ₹400.00")

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	rec2 := httptest.NewRecorder()
	got := popFlash(rec2, req)
	if got != "Order placed successfully! Total: ₹400.00" {
		t.Errorf("popFlash = %q", got)
	}

	// popFlash must clear the cookie.
	cleared := false
	for _, c := range rec2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie was not cleared")
	}
}

func TestPopFlashWithoutCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := popFlash(httptest.NewRecorder(), req); got != "" {
		t.Errorf("popFlash on bare request = %q, want empty", got)
	}
}

func TestWidgetScript(t *testing.T) {
	if got := widgetScript(config.WidgetConfig{}); got != "" {
		t.Errorf("unconfigured widget rendered %q", got)
	}

	partial := config.WidgetConfig{IntegrationID: "abc", Region: "us-east"}
	if got := widgetScript(partial); got != "" {
		t.Errorf("partially configured widget rendered %q", got)
	}

	full := config.WidgetConfig{IntegrationID: "abc", Region: "us-east", ServiceInstanceID: "def"}
	got := string(widgetScript(full))
	for _, want := range []string{`"abc"`, `"us-east"`, `"def"`, "watsonAssistantChatOptions"} {
		if !strings.Contains(got, want) {
			t.Errorf("widget script missing %s", want)
		}
	}
}

func TestParseTemplates(t *testing.T) {
	tmpl, err := parseTemplates()
	if err != nil {
		t.Fatalf("parseTemplates: %v", err)
	}
	for _, page := range pages {
		if tmpl[page] == nil {
			t.Errorf("missing template set for %q", page)
		}
	}
}
