package web

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"brewtalk/models"
	"brewtalk/services"
)

type pageData struct {
	Title        string
	Flash        string
	WidgetScript template.HTML
	PendingCount int
	MenuItems    []models.MenuItem
	Orders       []models.Order
}

var titleCaser = cases.Title(language.English)

// NormalizeItemName trims and title-cases a submitted menu item name, so
// "iced latte" and "Iced LATTE" collide on the same row.
func NormalizeItemName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	data.WidgetScript = s.widget
	data.Flash = popFlash(w, r)
	if err := s.tmpl[page].ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("render page", "page", page, "error", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	count, err := services.CountPendingOrders(r.Context())
	if err != nil {
		s.internalError(w, r, "count pending orders", err)
		return
	}
	s.render(w, r, "index", pageData{Title: "Home", PendingCount: count})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListMenuItems(r.Context())
	if err != nil {
		s.internalError(w, r, "list menu items", err)
		return
	}
	s.render(w, r, "menu", pageData{Title: "Menu", MenuItems: items})
}

func (s *Server) handleAddMenuItem(w http.ResponseWriter, r *http.Request) {
	name := NormalizeItemName(r.FormValue("name"))

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil {
		setFlash(w, "Price must be a number.")
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}
	inStock := r.FormValue("in_stock") != ""

	_, msg, err := services.AddMenuItem(r.Context(), name, price, inStock)
	if err != nil {
		s.internalError(w, r, "add menu item", err)
		return
	}
	setFlash(w, msg)
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

func (s *Server) handleOrderForm(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListMenuItems(r.Context())
	if err != nil {
		s.internalError(w, r, "list menu items", err)
		return
	}
	s.render(w, r, "order", pageData{Title: "Place Order", MenuItems: items})
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	// The order service consumes a flat string mapping; repeated keys
	// collapse to their first value.
	form := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}

	orderID, total, err := services.SubmitOrder(r.Context(), form)
	if errors.Is(err, models.ErrNoSelection) {
		setFlash(w, "Please select at least one item.")
		http.Redirect(w, r, "/order", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.internalError(w, r, "submit order", err)
		return
	}

	if err := s.notifier.NotifyNewOrder(orderID, total); err != nil {
		slog.Error("notify operator", "error", err)
	}

	setFlash(w, fmt.Sprintf("Order placed successfully! Total: ₹%.2f", total))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleManageOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := services.ListPendingOrders(r.Context())
	if err != nil {
		s.internalError(w, r, "list pending orders", err)
		return
	}
	s.render(w, r, "manage_orders", pageData{Title: "Manage Orders", Orders: orders})
}

func (s *Server) handleCompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch err := services.CompleteOrder(r.Context(), orderID); {
	case errors.Is(err, models.ErrOrderNotFound):
		setFlash(w, fmt.Sprintf("Order #%d not found.", orderID))
	case err != nil:
		s.internalError(w, r, "complete order", err)
		return
	default:
		setFlash(w, fmt.Sprintf("Order #%d marked as completed!", orderID))
	}
	http.Redirect(w, r, "/manage-orders", http.StatusSeeOther)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, action string, err error) {
	slog.Error(action, "path", r.URL.Path, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
