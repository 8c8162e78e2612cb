// Package routes wires the HTTP surface: storefront pages, the JSON
// endpoints they call, and the back-office under /admin.
package routes

import (
	"net/http"

	"github.com/vivekmishra161/AKC-autoparts-1/app/catalog"
	"github.com/vivekmishra161/AKC-autoparts-1/app/controllers"
	"github.com/vivekmishra161/AKC-autoparts-1/app/services"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/auth"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/metrics"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/middleware"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/router"
	"github.com/vivekmishra161/AKC-autoparts-1/public"
)

// Register mounts every route on the given router.
func Register(r *router.Router, st store.Stores, cat catalog.Reader) {
	authService := services.NewAuthService(st.Users, st.Admins, auth.Bcrypt{})
	orderService := services.NewOrderService(st, cat)
	reviewService := services.NewReviewService(st.Reviews)

	pages := controllers.NewPageController(cat, reviewService)
	accounts := controllers.NewAuthController(authService)
	orders := controllers.NewOrderController(orderService)
	reviews := controllers.NewReviewController(reviewService)
	admin := controllers.NewAdminController(authService, orderService, st.Users)
	health := controllers.NewHealthController()

	// Storefront pages.
	r.Get("/", "home", pages.Index)
	r.Get("/product", "product.show", pages.Product)
	r.Get("/cart", "cart", pages.Cart)

	// Customer auth.
	r.Get("/signin", "signin.page", accounts.SignInPage)
	r.Post("/signin", "signin", accounts.SignIn)
	r.Get("/signup", "signup.page", accounts.SignUpPage)
	r.Post("/signup", "signup", accounts.SignUp)
	r.Get("/signout", "signout", accounts.SignOut)

	// Orders.
	r.Post("/order", "order.place", orders.Place)
	r.Get("/my-orders", "order.mine", orders.MyOrders, middleware.RequireUser)
	r.Post("/cancel-order/{id}", "order.cancel", orders.Cancel)

	// Reviews.
	r.Post("/review", "review.create", reviews.Create)
	r.Get("/reviews/{productId}", "review.list", reviews.List)
	r.Get("/rating/{productId}", "review.rating", reviews.Rating)

	// Operational endpoints.
	r.Get("/api/health", "health", health.Health)
	r.HandleFunc("/metrics", metrics.Handler())
	r.Static("/assets", http.FS(public.Assets()))

	// Back-office.
	r.Get("/admin/login", "admin.login.page", admin.LoginPage)
	r.Post("/admin/login", "admin.login", admin.Login)
	r.Get("/admin/logout", "admin.logout", admin.Logout)

	adminPages := r.Group("/admin", middleware.RequireAdminPage)
	adminPages.Get("/dashboard", "admin.dashboard", admin.Dashboard)
	adminPages.Get("/users", "admin.users", admin.Users)
	adminPages.Get("/orders", "admin.orders", admin.Orders)

	adminAPI := r.Group("/admin", middleware.RequireAdminAPI)
	adminAPI.Post("/update-order-status", "admin.order.status", admin.UpdateStatus)
	adminAPI.Get("/events", "admin.events", admin.Events)
	adminAPI.Post("/orders/export", "admin.orders.export", admin.Export)
	adminAPI.Get("/health", "admin.health", health.Health)
}
