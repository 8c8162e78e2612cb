package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekmishra161/AKC-autoparts-1/app/catalog"
	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store/memstore"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/storage"
)

type fakeDisk struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeDisk() *fakeDisk { return &fakeDisk{files: map[string][]byte{}} }

func (d *fakeDisk) Put(path string, content []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[path] = content
	return nil
}

func (d *fakeDisk) PutStream(path string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return d.Put(path, b)
}

func (d *fakeDisk) Get(path string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.files[path]
	if !ok {
		return nil, fmt.Errorf("not found: %s", path)
	}
	return b, nil
}

func (d *fakeDisk) Exists(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.files[path]
	return ok
}

func (d *fakeDisk) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
	return nil
}

func (d *fakeDisk) URL(path string) string { return "/storage/" + path }

func newOrderService(t *testing.T) (*OrderService, store.Stores) {
	t.Helper()
	st := memstore.New()
	cat := catalog.NewStaticReader([]models.Product{
		{ID: "1", Name: "Brake Pad Set", Price: 1499},
		{ID: "2", Name: "Engine Oil 5W-30 (4L)", Price: 2199},
	})
	return NewOrderService(st, cat), st
}

func placeInput(items ...CartItem) PlaceOrderInput {
	return PlaceOrderInput{
		Items:         items,
		PaymentMethod: models.PaymentCOD,
		Name:          "Ravi Kumar",
		Address:       "12 MG Road, Bengaluru",
		City:          "Bengaluru",
		State:         "Karnataka",
		Pin:           "560001",
		Phone:         "9876543210",
	}
}

func TestPlaceSnapshotsCatalogPrices(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Place(context.Background(), "u1", placeInput(
		CartItem{ProductID: "1", Quantity: 2},
		CartItem{ProductID: "2", Quantity: 1},
	))
	require.NoError(t, err)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Brake Pad Set", o.Items[0].Name)
	assert.Equal(t, 1499.0, o.Items[0].Price)
	assert.Equal(t, 1499.0*2+2199.0, o.Total)
	assert.Equal(t, models.StatusPending, o.Status)
	assert.Equal(t, models.PaymentStatusCOD, o.PaymentStatus)
}

func TestPlaceUPIPaymentStatus(t *testing.T) {
	svc, _ := newOrderService(t)

	in := placeInput(CartItem{ProductID: "1", Quantity: 1})
	in.PaymentMethod = models.PaymentUPI
	o, err := svc.Place(context.Background(), "u1", in)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusUPI, o.PaymentStatus)
}

func TestPlaceRejectsBadPaymentMethod(t *testing.T) {
	svc, _ := newOrderService(t)

	in := placeInput(CartItem{ProductID: "1", Quantity: 1})
	in.PaymentMethod = "CARD"
	_, err := svc.Place(context.Background(), "u1", in)
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.Place(context.Background(), "u1", placeInput())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceDropsUnknownProducts(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Place(context.Background(), "u1", placeInput(
		CartItem{ProductID: "1", Quantity: 1},
		CartItem{ProductID: "999", Quantity: 3},
	))
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "1", o.Items[0].ProductID)
	assert.Equal(t, 1499.0, o.Total)
}

func TestPlaceRejectsWhenNoLineResolves(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.Place(context.Background(), "u1", placeInput(
		CartItem{ProductID: "999", Quantity: 1},
	))
	assert.ErrorIs(t, err, ErrInvalidCart)
}

func TestPlaceCoercesQuantity(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Place(context.Background(), "u1", placeInput(
		CartItem{ProductID: "1", Quantity: 0},
	))
	require.NoError(t, err)
	assert.Equal(t, 1, o.Items[0].Quantity)
}

func TestCancelRequiresOwnership(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "1", Quantity: 1}))
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), "u2", o.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.Cancel(context.Background(), "u1", o.ID))
	got, err := svc.ByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, got.Status)
}

func TestCancelShippedOrderFails(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "1", Quantity: 1}))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), o.ID, models.StatusShipped))

	err = svc.Cancel(context.Background(), "u1", o.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)
	err := svc.Cancel(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "1", Quantity: 1}))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), o.ID, "Lost"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), "missing", models.StatusShipped), store.ErrNotFound)

	require.NoError(t, svc.UpdateStatus(context.Background(), o.ID, models.StatusDelivered))
	got, err := svc.ByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, got.Status)
}

func TestForUserNewestFirst(t *testing.T) {
	svc, _ := newOrderService(t)

	first, err := svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "1", Quantity: 1}))
	require.NoError(t, err)
	second, err := svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "2", Quantity: 1}))
	require.NoError(t, err)
	_, err = svc.Place(context.Background(), "u2", placeInput(CartItem{ProductID: "1", Quantity: 1}))
	require.NoError(t, err)

	orders, err := svc.ForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestDashboard(t *testing.T) {
	svc, st := newOrderService(t)

	require.NoError(t, st.Users.Create(context.Background(), &models.User{Name: "Ravi", Email: "r@example.com"}))
	o, err := svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "1", Quantity: 1}))
	require.NoError(t, err)
	_, err = svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "2", Quantity: 1}))
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(context.Background(), o.ID, models.StatusDelivered))

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(2), stats.Orders)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1499.0+2199.0, stats.Revenue)
	assert.Len(t, stats.Recent, 2)
}

func TestExportCSV(t *testing.T) {
	svc, _ := newOrderService(t)
	disk := newFakeDisk()
	storage.RegisterDisk("local", disk)

	_, err := svc.Place(context.Background(), "u1", placeInput(CartItem{ProductID: "1", Quantity: 2}))
	require.NoError(t, err)

	path, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	require.True(t, disk.Exists(path))

	content, err := disk.Get(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "payment_method")
	assert.Contains(t, lines[1], "2998.00")
}
