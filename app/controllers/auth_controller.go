package controllers

import (
	"errors"
	"net/http"

	"github.com/vivekmishra161/AKC-autoparts-1/app/services"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/app/views"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/bind"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/session"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/validate"
)

// AuthController serves customer sign-up, sign-in and sign-out.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) SignInPage(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "signin", views.Data{Title: "Sign In", User: pageUser(r)})
}

func (c *AuthController) SignUpPage(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "signup", views.Data{Title: "Sign Up", User: pageUser(r)})
}

// SignIn handles the sign-in form. Validation and credential failures
// re-render the page with a message.
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	form, err := bind.Form(r)
	if err != nil {
		views.Render(w, "signin", views.Data{Title: "Sign In", Error: "Invalid form submission"})
		return
	}

	p, err := c.service.SignIn(r.Context(), form["email"], form["password"])
	if errors.Is(err, services.ErrInvalidCredentials) {
		views.Render(w, "signin", views.Data{Title: "Sign In", Error: "Invalid email or password"})
		return
	}
	if err != nil {
		logger.Error("signin failed", "error", err)
		views.Render(w, "signin", views.Data{Title: "Sign In", Error: "Something went wrong, please try again"})
		return
	}

	sess := session.FromRequest(r)
	sess.SignIn(p, form["remember"] != "")
	if err := sess.Save(r.Context(), w); err != nil {
		logger.Error("signin: session save failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SignUp handles the registration form, then signs the new customer in.
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	form, err := bind.Form(r)
	if err != nil {
		views.Render(w, "signup", views.Data{Title: "Sign Up", Error: "Invalid form submission"})
		return
	}

	in := services.SignUpInput{
		Name:     form["name"],
		Email:    form["email"],
		Phone:    form["phone"],
		Password: form["password"],
	}
	if errs := validate.Struct(in); len(errs) > 0 {
		views.Render(w, "signup", views.Data{Title: "Sign Up", Error: firstError(errs)})
		return
	}

	u, err := c.service.SignUp(r.Context(), in)
	if errors.Is(err, store.ErrDuplicateEmail) {
		views.Render(w, "signup", views.Data{Title: "Sign Up", Error: "Email is already registered"})
		return
	}
	if err != nil {
		logger.Error("signup failed", "error", err)
		views.Render(w, "signup", views.Data{Title: "Sign Up", Error: "Something went wrong, please try again"})
		return
	}

	sess := session.FromRequest(r)
	sess.SignIn(session.Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: "customer"}, false)
	if err := sess.Save(r.Context(), w); err != nil {
		logger.Error("signup: session save failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SignOut destroys the session and returns to the storefront.
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	if sess != nil {
		if err := sess.Destroy(r.Context(), w); err != nil {
			logger.Warn("signout: destroy failed", "error", err)
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func firstError(errs map[string]string) string {
	for _, msg := range errs {
		return msg
	}
	return "Invalid input"
}
