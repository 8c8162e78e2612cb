package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store/memstore"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/auth"
)

func newAuthService(t *testing.T) (*AuthService, store.Stores) {
	t.Helper()
	st := memstore.New()
	return NewAuthService(st.Users, st.Admins, auth.Bcrypt{}), st
}

func TestSignUpHashesPassword(t *testing.T) {
	svc, st := newAuthService(t)

	u, err := svc.SignUp(context.Background(), SignUpInput{
		Name:     "Ravi",
		Email:    "Ravi@Example.com",
		Phone:    "9876543210",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ravi@example.com", u.Email)
	assert.NotEqual(t, "secret-pass", u.Password)

	stored, err := st.Users.ByEmail(context.Background(), "ravi@example.com")
	require.NoError(t, err)
	assert.True(t, auth.Bcrypt{}.Verify(stored.Password, "secret-pass"))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	in := SignUpInput{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210", Password: "secret-pass"}
	_, err := svc.SignUp(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), in)
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestSignIn(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.SignUp(context.Background(), SignUpInput{
		Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210", Password: "secret-pass",
	})
	require.NoError(t, err)

	p, err := svc.SignIn(context.Background(), "ravi@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "customer", p.Role)
	assert.Equal(t, "Ravi", p.Name)

	_, err = svc.SignIn(context.Background(), "ravi@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "nobody@example.com", "secret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminSignIn(t *testing.T) {
	svc, st := newAuthService(t)

	hash, err := auth.Bcrypt{}.Hash("admin123")
	require.NoError(t, err)
	require.NoError(t, st.Admins.FirstOrCreate(context.Background(), &models.Admin{
		Name: "Admin", Email: "admin@gmail.com", Password: hash,
	}))

	p, err := svc.AdminSignIn(context.Background(), "admin@gmail.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Role)

	_, err = svc.AdminSignIn(context.Background(), "admin@gmail.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminToken(t *testing.T) {
	svc, st := newAuthService(t)

	hash, err := auth.Bcrypt{}.Hash("admin123")
	require.NoError(t, err)
	require.NoError(t, st.Admins.FirstOrCreate(context.Background(), &models.Admin{
		Name: "Admin", Email: "admin@gmail.com", Password: hash,
	}))

	token, err := svc.AdminToken(context.Background(), "admin@gmail.com", "admin123")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}
