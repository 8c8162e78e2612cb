package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/services"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/app/views"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/bind"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/event"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/response"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/sse"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/storage"
)

// AdminController serves the back-office pages and API.
type AdminController struct {
	auth   *services.AuthService
	orders *services.OrderService
	users  store.UserStore
}

func NewAdminController(auth *services.AuthService, orders *services.OrderService, users store.UserStore) *AdminController {
	return &AdminController{auth: auth, orders: orders, users: users}
}

func (c *AdminController) LoginPage(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "admin/login", views.Data{Title: "Admin Login"})
}

// Login handles the back-office login. A JSON body additionally yields
// a bearer token for API clients.
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") == "application/json" {
		c.apiLogin(w, r)
		return
	}

	form, err := bind.Form(r)
	if err != nil {
		views.Render(w, "admin/login", views.Data{Title: "Admin Login", Error: "Invalid form submission"})
		return
	}

	p, err := c.auth.AdminSignIn(r.Context(), form["email"], form["password"])
	if errors.Is(err, services.ErrInvalidCredentials) {
		views.Render(w, "admin/login", views.Data{Title: "Admin Login", Error: "Invalid email or password"})
		return
	}
	if err != nil {
		logger.Error("admin login failed", "error", err)
		views.Render(w, "admin/login", views.Data{Title: "Admin Login", Error: "Something went wrong, please try again"})
		return
	}

	sess := session.FromRequest(r)
	sess.SignIn(p, false)
	if err := sess.Save(r.Context(), w); err != nil {
		logger.Error("admin login: session save failed", "error", err)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (c *AdminController) apiLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.AdminToken(r.Context(), body.Email, body.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Unauthorized(w)
		return
	}
	if err != nil {
		logger.Error("admin api login failed", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]interface{}{"token": token})
}

func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	if sess != nil {
		if err := sess.Destroy(r.Context(), w); err != nil {
			logger.Warn("admin logout: destroy failed", "error", err)
		}
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := c.orders.Dashboard(r.Context())
	if err != nil {
		logger.Error("dashboard: stats failed", "error", err)
	}
	views.Render(w, "admin/dashboard", views.Data{
		Title: "Dashboard",
		User:  pageUser(r),
		Page:  stats,
	})
}

func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		logger.Error("admin users: load failed", "error", err)
		users = []models.User{}
	}
	views.Render(w, "admin/users", views.Data{
		Title: "Users",
		User:  pageUser(r),
		Page:  users,
	})
}

func (c *AdminController) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.All(r.Context())
	if err != nil {
		logger.Error("admin orders: load failed", "error", err)
		orders = []models.Order{}
	}
	views.Render(w, "admin/orders", views.Data{
		Title: "Orders",
		User:  pageUser(r),
		Page:  orders,
	})
}

// UpdateStatus moves an order through its lifecycle. Accepts the admin
// page form or JSON from API clients.
func (c *AdminController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var orderID, status string
	fromForm := r.Header.Get("Content-Type") != "application/json"
	if fromForm {
		form, err := bind.Form(r)
		if err != nil {
			response.Fail(w, http.StatusBadRequest, "Invalid form submission")
			return
		}
		orderID, status = form["orderId"], form["status"]
	} else {
		var body struct {
			OrderID string `json:"orderId" validate:"required"`
			Status  string `json:"status" validate:"required"`
		}
		if errs, err := bind.JSON(r, &body); err != nil {
			response.Fail(w, http.StatusBadRequest, "Invalid request body")
			return
		} else if len(errs) > 0 {
			response.ValidationError(w, errs)
			return
		}
		orderID, status = body.OrderID, body.Status
	}

	err := c.orders.UpdateStatus(r.Context(), orderID, status)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		response.Fail(w, http.StatusBadRequest, "Invalid order status")
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(w)
	case err != nil:
		logger.Error("update-order-status failed", "order_id", orderID, "error", err)
		response.ServerError(w)
	default:
		if fromForm {
			http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
			return
		}
		response.Success(w, map[string]interface{}{"orderId": orderID, "status": status})
	}
}

// Events streams order activity to the dashboard over SSE.
func (c *AdminController) Events(w http.ResponseWriter, r *http.Request) {
	stream := sse.New(w, r)
	if stream == nil {
		return
	}

	placed, cancelPlaced := event.Subscribe(services.EventOrderPlaced)
	updated, cancelUpdated := event.Subscribe(services.EventOrderUpdated)
	defer cancelPlaced()
	defer cancelUpdated()

	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			stream.Comment("keepalive")
		case payload := <-placed:
			if o, ok := payload.(*models.Order); ok {
				if err := stream.Send(services.EventOrderPlaced, o); err != nil {
					return
				}
			}
		case payload := <-updated:
			if o, ok := payload.(*models.Order); ok {
				if err := stream.Send(services.EventOrderUpdated, o); err != nil {
					return
				}
			}
		}
	}
}

// Export writes all orders to storage as CSV and returns the file URL.
func (c *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	path, err := c.orders.ExportCSV(r.Context())
	if err != nil {
		logger.Error("order export failed", "error", err)
		response.ServerError(w)
		return
	}
	response.Success(w, map[string]interface{}{
		"path": path,
		"url":  storage.Default().URL(path),
	})
}
