package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telia-restaurant/models"
)

type fakeCustomerStore struct {
	byEmail     map[string]*models.Customer
	findErr     error
	createErr   error
	findCalls   int
	createCalls int
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byEmail: map[string]*models.Customer{}}
}

func (f *fakeCustomerStore) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	if cust, ok := f.byEmail[email]; ok {
		return cust, nil
	}
	return nil, models.ErrCustomerNotFound
}

func (f *fakeCustomerStore) Create(ctx context.Context, cust *models.Customer) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	cust.ID = fmt.Sprintf("cust-%d", f.createCalls)
	cust.CreatedAt = time.Now()
	if cust.Email != nil {
		f.byEmail[*cust.Email] = cust
	}
	return nil
}

type fakeOrderStore struct {
	orders      []models.Order
	createErr   error
	createCalls int
	updateCalls int
	clock       time.Time
}

func (f *fakeOrderStore) Create(ctx context.Context, o *models.Order) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	o.ID = fmt.Sprintf("order-%d", f.createCalls)
	o.OrderNumber = fmt.Sprintf("ORD-%d", 1000+f.createCalls)
	f.clock = f.clock.Add(time.Minute)
	o.CreatedAt = f.clock
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderStore) List(ctx context.Context, status string) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		if status == "" || status == models.OrderStatusAll || o.Status == status {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, orderID, status string) error {
	f.updateCalls++
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			return nil
		}
	}
	return models.ErrOrderNotFound
}

func cartWith(lines ...models.MenuItem) *models.Cart {
	cart := models.NewCart()
	for _, item := range lines {
		cart.AddItem(item)
	}
	return cart
}

func TestSubmit_EmptyCart(t *testing.T) {
	customers := newFakeCustomerStore()
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)

	_, err := svc.Submit(context.Background(), models.NewCart(), models.CheckoutRequest{
		CustomerName: "Asha",
		PhoneNumber:  "9999999999",
	})

	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Zero(t, customers.findCalls)
	assert.Zero(t, customers.createCalls)
	assert.Zero(t, orders.createCalls)
}

func TestSubmit_MissingCustomerInfo(t *testing.T) {
	customers := newFakeCustomerStore()
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)
	item := models.MenuItem{ID: "b3", Name: "Chicken Dum Biryani", Category: "biryani", Price: 200}

	cases := []models.CheckoutRequest{
		{CustomerName: "", PhoneNumber: "9999999999"},
		{CustomerName: "Asha", PhoneNumber: ""},
		{CustomerName: "   ", PhoneNumber: "  "},
	}
	for _, req := range cases {
		_, err := svc.Submit(context.Background(), cartWith(item), req)
		assert.ErrorIs(t, err, models.ErrMissingCustomerInfo)
	}
	assert.Zero(t, customers.findCalls)
	assert.Zero(t, orders.createCalls)
}

func TestSubmit_CreatesOrderAndClearsCart(t *testing.T) {
	customers := newFakeCustomerStore()
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)

	cart := models.NewCart()
	item := models.MenuItem{ID: "b3", Name: "Chicken Dum Biryani", Category: "biryani", Price: 200}
	cart.AddItem(item)
	cart.AddItem(item)

	result, err := svc.Submit(context.Background(), cart, models.CheckoutRequest{
		CustomerName: "Asha",
		PhoneNumber:  "9999999999",
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", result.ID)
	assert.Equal(t, "ORD-1001", result.OrderNumber)

	require.Len(t, orders.orders, 1)
	created := orders.orders[0]
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.Equal(t, 400.0, created.TotalAmount)
	assert.Equal(t, "Asha", created.CustomerName)
	assert.Equal(t, "9999999999", created.PhoneNumber)
	assert.Nil(t, created.CustomerEmail)

	require.Len(t, created.Items, 1)
	assert.Equal(t, "Chicken Dum Biryani", created.Items[0].ItemName)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.Equal(t, 400.0, created.Items[0].TotalPrice)

	// No email supplied, so no lookup and a fresh customer record.
	assert.Zero(t, customers.findCalls)
	assert.Equal(t, 1, customers.createCalls)

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.Total())
}

func TestSubmit_ReusesCustomerByEmail(t *testing.T) {
	customers := newFakeCustomerStore()
	email := "asha@example.com"
	customers.byEmail[email] = &models.Customer{ID: "cust-existing", Name: "Asha", Email: &email, Phone: "9999999999"}
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)

	cart := cartWith(models.MenuItem{ID: "s3", Name: "Paneer Tikka", Category: "starters", Price: 160})

	_, err := svc.Submit(context.Background(), cart, models.CheckoutRequest{
		CustomerName:  "Asha",
		CustomerEmail: email,
		PhoneNumber:   "9999999999",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, customers.findCalls)
	assert.Zero(t, customers.createCalls)
	assert.Equal(t, "cust-existing", orders.orders[0].CustomerID)
	require.NotNil(t, orders.orders[0].CustomerEmail)
	assert.Equal(t, email, *orders.orders[0].CustomerEmail)
}

func TestSubmit_CreatesCustomerWhenEmailUnknown(t *testing.T) {
	customers := newFakeCustomerStore()
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)

	cart := cartWith(models.MenuItem{ID: "s3", Name: "Paneer Tikka", Category: "starters", Price: 160})

	_, err := svc.Submit(context.Background(), cart, models.CheckoutRequest{
		CustomerName:    "Ravi",
		CustomerEmail:   "ravi@example.com",
		PhoneNumber:     "8888888888",
		DeliveryAddress: "12 Jubilee Hills",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, customers.findCalls)
	assert.Equal(t, 1, customers.createCalls)

	cust := customers.byEmail["ravi@example.com"]
	require.NotNil(t, cust)
	require.NotNil(t, cust.Address)
	assert.Equal(t, "12 Jubilee Hills", *cust.Address)
}

func TestSubmit_WrapsStoreFailure(t *testing.T) {
	customers := newFakeCustomerStore()
	cause := errors.New("connection reset")
	orders := &fakeOrderStore{createErr: cause}
	svc := NewOrderService(customers, orders)

	cart := cartWith(models.MenuItem{ID: "dr3", Name: "Sweet Lassi", Category: "drinks", Price: 50})

	_, err := svc.Submit(context.Background(), cart, models.CheckoutRequest{
		CustomerName: "Asha",
		PhoneNumber:  "9999999999",
	})

	var subErr *models.OrderSubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.ErrorIs(t, err, cause)

	// The cart survives a failed submission so the user can retry.
	assert.Equal(t, 1, cart.Len())
}

func TestSubmit_CustomerLookupFailureAborts(t *testing.T) {
	customers := newFakeCustomerStore()
	customers.findErr = errors.New("timeout")
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)

	cart := cartWith(models.MenuItem{ID: "dr3", Name: "Sweet Lassi", Category: "drinks", Price: 50})

	_, err := svc.Submit(context.Background(), cart, models.CheckoutRequest{
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		PhoneNumber:   "9999999999",
	})

	var subErr *models.OrderSubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Zero(t, orders.createCalls)
}

func TestListOrders_FiltersByStatusNewestFirst(t *testing.T) {
	customers := newFakeCustomerStore()
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)

	item := models.MenuItem{ID: "b1", Name: "Veg Biryani", Category: "biryani", Price: 140}
	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), cartWith(item), models.CheckoutRequest{
			CustomerName: "Asha",
			PhoneNumber:  "9999999999",
		})
		require.NoError(t, err)
	}
	require.NoError(t, svc.SetStatus(context.Background(), "order-2", models.OrderStatusDelivered))

	pending, err := svc.ListOrders(context.Background(), models.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, o := range pending {
		assert.Equal(t, models.OrderStatusPending, o.Status)
	}
	assert.True(t, pending[0].CreatedAt.After(pending[1].CreatedAt))

	all, err := svc.ListOrders(context.Background(), models.OrderStatusAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListOrders_RejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(newFakeCustomerStore(), &fakeOrderStore{})

	_, err := svc.ListOrders(context.Background(), "shipped")

	assert.ErrorIs(t, err, models.ErrInvalidOrderStatus)
}

func TestSetStatus(t *testing.T) {
	customers := newFakeCustomerStore()
	orders := &fakeOrderStore{}
	svc := NewOrderService(customers, orders)

	_, err := svc.Submit(context.Background(), cartWith(models.MenuItem{ID: "b1", Name: "Veg Biryani", Category: "biryani", Price: 140}),
		models.CheckoutRequest{CustomerName: "Asha", PhoneNumber: "9999999999"})
	require.NoError(t, err)

	// Any value is reachable from any other, including backwards.
	require.NoError(t, svc.SetStatus(context.Background(), "order-1", models.OrderStatusDelivered))
	require.NoError(t, svc.SetStatus(context.Background(), "order-1", models.OrderStatusPending))

	err = svc.SetStatus(context.Background(), "order-1", "shipped")
	assert.ErrorIs(t, err, models.ErrInvalidOrderStatus)

	err = svc.SetStatus(context.Background(), "missing", models.OrderStatusReady)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}
