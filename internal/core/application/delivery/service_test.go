package delivery_test

import (
	"fmt"
	"sync"
	"testing"

	"fooddelivery/cmd"
	"fooddelivery/internal/core/application/delivery"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newService(t *testing.T) *delivery.Service {
	t.Helper()
	root := cmd.NewCompositionRoot(cmd.DefaultConfig(), zaptest.NewLogger(t))
	return root.Service()
}

func seedMenu(t *testing.T, svc *delivery.Service) {
	t.Helper()
	ctx := t.Context()
	require.NoError(t, svc.AddMenuItem(ctx, "Hamburger", decimal.RequireFromString("5.00"), "Fastfood", 10))
	require.NoError(t, svc.AddMenuItem(ctx, "Cheeseburger", decimal.RequireFromString("6.50"), "Fastfood", 12))
	require.NoError(t, svc.AddMenuItem(ctx, "Fries", decimal.RequireFromString("1.50"), "Fastfood", 16))
	require.NoError(t, svc.AddMenuItem(ctx, "Coke", decimal.RequireFromString("2.00"), "Drinks", 0))
}

func TestService_Customers(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)

	jon, err := svc.RegisterCustomer(ctx, "Jon Snow", "The Wall", "555-0101", "jon@wall.org")
	require.NoError(t, err)
	assert.Equal(t, 1, jon)

	arya, err := svc.RegisterCustomer(ctx, "Arya Stark", "Winterfell", "555-0102", "arya@winterfell.org")
	require.NoError(t, err)
	assert.Equal(t, 2, arya)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.RegisterCustomer(ctx, "Ghost", "North", "0", "jon@wall.org")
		require.ErrorIs(t, err, delivery.ErrDuplicateCustomer)

		customers, err := svc.ListCustomers(ctx)
		require.NoError(t, err)
		assert.Len(t, customers, 2)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := svc.RegisterCustomer(ctx, "Nobody", "Nowhere", "0", "")
		require.ErrorIs(t, err, delivery.ErrValueIsRequired)
	})

	t.Run("describe", func(t *testing.T) {
		description, err := svc.DescribeCustomer(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Jon Snow, The Wall, 555-0101, jon@wall.org", description)

		_, err = svc.DescribeCustomer(ctx, 3)
		require.ErrorIs(t, err, delivery.ErrUnknownCustomer)
	})

	t.Run("list sorted", func(t *testing.T) {
		customers, err := svc.ListCustomers(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Arya Stark, Winterfell, 555-0102, arya@winterfell.org",
			"Jon Snow, The Wall, 555-0101, jon@wall.org",
		}, customers)
	})
}

func TestService_Menu(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)
	seedMenu(t, svc)

	items, err := svc.FindItems(ctx, "BURGER")
	require.NoError(t, err)
	assert.Equal(t, []string{"[Fastfood] Cheeseburger: 6.50", "[Fastfood] Hamburger: 5.00"}, items)

	all, err := svc.FindItems(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[Drinks] Coke: 2.00",
		"[Fastfood] Cheeseburger: 6.50",
		"[Fastfood] Fries: 1.50",
		"[Fastfood] Hamburger: 5.00",
	}, all)

	err = svc.AddMenuItem(ctx, "Free lunch", decimal.RequireFromString("-0.01"), "Myth", 0)
	require.ErrorIs(t, err, delivery.ErrValueIsInvalid)
}

func TestService_OrderLifecycle(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)
	seedMenu(t, svc)

	id, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	qty, err := svc.AddItemToOrder(ctx, id, "hamburger", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
	qty, err = svc.AddItemToOrder(ctx, id, "hamburger", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	t.Run("ambiguous and missing items change nothing", func(t *testing.T) {
		_, err := svc.AddItemToOrder(ctx, id, "burger", 1)
		require.ErrorIs(t, err, delivery.ErrAmbiguousItem)
		_, err = svc.AddItemToOrder(ctx, id, "pizza", 1)
		require.ErrorIs(t, err, delivery.ErrAmbiguousItem)
		_, err = svc.AddItemToOrder(ctx, id, "coke", 0)
		require.ErrorIs(t, err, delivery.ErrValueIsInvalid)

		lines, err := svc.ShowOrder(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"Hamburger, 3"}, lines)
	})

	total, err := svc.OrderTotal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "15.00", total.StringFixed(2))

	_, err = svc.StartPreparation(ctx, id)
	require.ErrorIs(t, err, delivery.ErrIllegalTransition)

	eta, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 30, eta)

	_, err = svc.Confirm(ctx, id)
	require.ErrorIs(t, err, delivery.ErrIllegalTransition)

	_, err = svc.AddItemToOrder(ctx, id, "fries", 1)
	require.NoError(t, err)

	eta, err = svc.StartPreparation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 31, eta)

	eta, err = svc.BeginDelivery(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 15, eta)

	require.NoError(t, svc.CompleteDelivery(ctx, id))
	require.ErrorIs(t, svc.CompleteDelivery(ctx, id), delivery.ErrIllegalTransition)

	status, err := svc.OrderStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, delivery.StatusDelivered, status)
	assert.Equal(t, "DELIVERED", status.String())
}

func TestService_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)
	seedMenu(t, svc)

	_, err := svc.AddItemToOrder(ctx, 1, "coke", 1)
	require.ErrorIs(t, err, delivery.ErrInvalidOrder)
	_, err = svc.ShowOrder(ctx, 1)
	require.ErrorIs(t, err, delivery.ErrInvalidOrder)
	_, err = svc.OrderTotal(ctx, 0)
	require.ErrorIs(t, err, delivery.ErrInvalidOrder)
	_, err = svc.OrderStatus(ctx, -1)
	require.ErrorIs(t, err, delivery.ErrInvalidOrder)
	_, err = svc.Confirm(ctx, 1)
	require.ErrorIs(t, err, delivery.ErrInvalidOrder)
	require.ErrorIs(t, svc.CompleteDelivery(ctx, 1), delivery.ErrInvalidOrder)
}

func TestService_Reports(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)
	seedMenu(t, svc)

	jon, err := svc.RegisterCustomer(ctx, "Jon Snow", "The Wall", "1", "jon@wall.org")
	require.NoError(t, err)
	arya, err := svc.RegisterCustomer(ctx, "Arya Stark", "Winterfell", "2", "arya@winterfell.org")
	require.NoError(t, err)
	_, err = svc.RegisterCustomer(ctx, "Sansa Stark", "Winterfell", "3", "sansa@winterfell.org")
	require.NoError(t, err)

	place := func(customerID int, search string, qty int) {
		id, err := svc.CreateOrder(ctx, customerID)
		require.NoError(t, err)
		_, err = svc.AddItemToOrder(ctx, id, search, qty)
		require.NoError(t, err)
	}
	place(jon, "hamburger", 2)    // 10.00
	place(arya, "coke", 5)        // 10.00
	place(jon, "cheeseburger", 1) // 6.50
	place(99, "fries", 10)        // unregistered customer

	total, err := svc.CustomerTotal(ctx, jon)
	require.NoError(t, err)
	assert.Equal(t, "16.50", total.StringFixed(2))

	total, err = svc.CustomerTotal(ctx, 42)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	ranks, err := svc.BestCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.Equal(t, "16.50", ranks[0].Total.StringFixed(2))
	assert.Equal(t, []string{"Jon Snow, The Wall, 1, jon@wall.org"}, ranks[0].Customers)
	assert.Equal(t, "10.00", ranks[1].Total.StringFixed(2))
	assert.Equal(t, []string{"Arya Stark, Winterfell, 2, arya@winterfell.org"}, ranks[1].Customers)

	best, err := svc.BestItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fries, 15.00", "Coke, 10.00", "Hamburger, 10.00", "Cheeseburger, 6.50"}, best)

	popular, err := svc.PopularItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fries, 10", "Coke, 5", "Hamburger, 2", "Cheeseburger, 1"}, popular)
}

func TestService_ConcurrentOrders(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)
	seedMenu(t, svc)

	const workers = 20
	ids := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := svc.CreateOrder(ctx, 1)
			if err != nil {
				return
			}
			if _, err = svc.AddItemToOrder(ctx, id, "coke", 1); err != nil {
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	for id := 1; id <= workers; id++ {
		assert.True(t, seen[id], "order %d", id)
	}

	total, err := svc.CustomerTotal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "40.00", total.StringFixed(2))
}

func TestService_GetOrder(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)
	seedMenu(t, svc)

	id, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)
	_, err = svc.AddItemToOrder(ctx, id, "hamburger", 2)
	require.NoError(t, err)
	_, err = svc.AddItemToOrder(ctx, id, "fries", 1)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, id)
	require.NoError(t, err)

	view, err := svc.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, view.ID)
	assert.Equal(t, 1, view.CustomerID)
	assert.Equal(t, delivery.StatusConfirmed, view.Status)
	assert.Equal(t, []string{"Fries, 1", "Hamburger, 2"}, view.Lines)
	assert.Equal(t, "11.50", view.Total.StringFixed(2))

	_, err = svc.GetOrder(ctx, id+1)
	require.ErrorIs(t, err, delivery.ErrInvalidOrder)
}

func TestService_GetOrderIsConsistentUnderWrites(t *testing.T) {
	ctx := t.Context()
	svc := newService(t)
	seedMenu(t, svc)

	id, err := svc.CreateOrder(ctx, 1)
	require.NoError(t, err)

	const writes = 50
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range writes {
			if _, err := svc.AddItemToOrder(ctx, id, "coke", 1); err != nil {
				return
			}
		}
	}()

	coke := decimal.RequireFromString("2.00")
	for range writes {
		view, err := svc.GetOrder(ctx, id)
		require.NoError(t, err)

		qty := 0
		if len(view.Lines) == 1 {
			_, err = fmt.Sscanf(view.Lines[0], "Coke, %d", &qty)
			require.NoError(t, err)
		}
		assert.True(t, view.Total.Equal(coke.Mul(decimal.NewFromInt(int64(qty)))),
			"total %s for %v", view.Total, view.Lines)
	}
	<-done

	view, err := svc.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coke, 50"}, view.Lines)
	assert.Equal(t, "100.00", view.Total.StringFixed(2))
}

func TestService_Logging(t *testing.T) {
	ctx := t.Context()
	core, logs := observer.New(zapcore.InfoLevel)
	root := cmd.NewCompositionRoot(cmd.DefaultConfig(), zap.New(core))
	svc := root.Service()

	id, err := svc.CreateOrder(ctx, 7)
	require.NoError(t, err)
	_, err = svc.BeginDelivery(ctx, id)
	require.Error(t, err)

	created := logs.FilterMessage("order created").All()
	require.Len(t, created, 1)
	assert.Equal(t, int64(id), created[0].ContextMap()["order_id"])
	assert.Equal(t, int64(7), created[0].ContextMap()["customer_id"])

	failed := logs.FilterMessage("begin delivery failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}

func TestService_NilLogger(t *testing.T) {
	svc := delivery.NewService(delivery.Handlers{}, nil)
	assert.NotNil(t, svc)
}
