package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/services"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/app/views"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/bind"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/response"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
)

// OrderController serves checkout and the customer's order history.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Place accepts the checkout JSON. The caller must be signed in; every
// other failure maps to a success:false envelope with a message.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	p, ok := session.Principal{}, false
	if sess != nil {
		p, ok = sess.User()
	}
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "Please sign in to place an order")
		return
	}

	var in services.PlaceOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	o, err := c.service.Place(r.Context(), p.ID, in)
	switch {
	case errors.Is(err, services.ErrInvalidPayment):
		response.Fail(w, http.StatusBadRequest, "Invalid payment method")
	case errors.Is(err, services.ErrEmptyCart):
		response.Fail(w, http.StatusBadRequest, "Your cart is empty")
	case errors.Is(err, services.ErrInvalidCart):
		response.Fail(w, http.StatusBadRequest, "No valid items in cart")
	case err != nil:
		logger.Error("order placement failed", "user_id", p.ID, "error", err)
		response.ServerError(w)
	default:
		// The cart clear is best-effort; the order is already durable.
		sess.Delete("cart")
		if err := sess.Save(r.Context(), w); err != nil {
			logger.Warn("order: session save failed", "user_id", p.ID, "error", err)
		}
		response.Success(w, map[string]interface{}{
			"orderId":           o.ID,
			"total":             o.Total,
			"paymentStatus":     o.PaymentStatus,
			"estimatedDelivery": o.EstimatedDelivery(),
		})
	}
}

// MyOrders renders the signed-in customer's order history.
func (c *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	p, ok := sess.User()
	if !ok {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	orders, err := c.service.ForUser(r.Context(), p.ID)
	if err != nil {
		logger.Error("my-orders: load failed", "user_id", p.ID, "error", err)
		orders = []models.Order{}
	}
	views.Render(w, "my_orders", views.Data{
		Title: "My Orders",
		User:  p,
		Page:  orders,
	})
}

// Cancel lets the owner cancel an order that has not shipped.
func (c *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	p, ok := session.Principal{}, false
	if sess != nil {
		p, ok = sess.User()
	}
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "Please sign in")
		return
	}

	orderID := chi.URLParam(r, "id")
	err := c.service.Cancel(r.Context(), p.ID, orderID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrNotOwner):
		response.Forbidden(w)
	case errors.Is(err, services.ErrNotCancellable):
		response.Fail(w, http.StatusConflict, "Order can no longer be cancelled")
	case err != nil:
		logger.Error("cancel failed", "order_id", orderID, "error", err)
		response.ServerError(w)
	default:
		response.Success(w, map[string]interface{}{"orderId": orderID, "status": models.StatusCancelled})
	}
}
