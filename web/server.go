package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"brewtalk/bot"
	"brewtalk/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{"index", "menu", "order", "manage_orders"}

type Server struct {
	srv      *http.Server
	tmpl     map[string]*template.Template
	widget   template.HTML
	notifier *bot.Notifier
}

func New(cfg *config.Config, notifier *bot.Notifier) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		tmpl:     tmpl,
		widget:   widgetScript(cfg.Widget),
		notifier: notifier,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)

	router.Get("/", s.handleIndex)
	router.Get("/menu", s.handleMenu)
	router.Post("/menu", s.handleAddMenuItem)
	router.Get("/order", s.handleOrderForm)
	router.Post("/order", s.handleSubmitOrder)
	router.Get("/manage-orders", s.handleManageOrders)
	router.Get("/complete-order/{id}", s.handleCompleteOrder)

	s.srv = &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}
	return s, nil
}

func (s *Server) Run() error {
	return s.srv.ListenAndServe()
}

func parseTemplates() (map[string]*template.Template, error) {
	tmpl := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		tmpl[page] = t
	}
	return tmpl, nil
}

// widgetScript renders the hosted chat widget loader, or nothing when
// the widget is not configured.
func widgetScript(w config.WidgetConfig) template.HTML {
	if !w.Enabled() {
		return ""
	}
	return template.HTML(fmt.Sprintf(`<script>
window.watsonAssistantChatOptions = {
  integrationID: %q,
  region: %q,
  serviceInstanceID: %q,
  onLoad: function(instance) { instance.render(); }
};
setTimeout(function(){
  const t=document.createElement('script');
  t.src="https://web-chat.global.assistant.watson.app.domain.cloud/versions/" + (window.watsonAssistantChatOptions.clientVersion || 'latest') + "/WatsonAssistantChatEntry.js";
  document.head.appendChild(t);
});
</script>`, w.IntegrationID, w.Region, w.ServiceInstanceID))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
