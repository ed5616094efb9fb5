package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	ordersmemory "github.com/soocrates/minishop/internal/domains/orders/adapters/memory"
	"github.com/soocrates/minishop/internal/domains/orders/domain"
	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     []*domain.Order
	nextID     int64
	appendErr  error
	appendCall int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (f *fakeOrderRepo) Append(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendCall++
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	clone := *order
	f.nextID++
	clone.ID = f.nextID
	f.orders = append(f.orders, &clone)
	result := clone
	return &result, nil
}

func (f *fakeOrderRepo) ListAll(_ context.Context) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]*domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		clone := *o
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			clone := *o
			list = append(list, &clone)
		}
	}
	return list, nil
}

type fakeUserDirectory struct {
	mu      sync.Mutex
	known   map[int64]bool
	err     error
	lookups int
}

func newFakeUserDirectory(ids ...int64) *fakeUserDirectory {
	known := make(map[int64]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &fakeUserDirectory{known: known}
}

func (f *fakeUserDirectory) LookupUser(_ context.Context, userID int64) (ports.UserLookupOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return "", f.err
	}
	if f.known[userID] {
		return ports.UserFound, nil
	}
	return ports.UserNotFound, nil
}

type fakeInventoryLedger struct {
	mu        sync.Mutex
	stock     map[int64]int64
	err       error
	decreases int
	increases int
}

func newFakeInventoryLedger(stock map[int64]int64) *fakeInventoryLedger {
	return &fakeInventoryLedger{stock: stock}
}

func (f *fakeInventoryLedger) DecreaseStock(_ context.Context, productID, quantity int64) (ports.StockDecrementResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decreases++
	if f.err != nil {
		return ports.StockDecrementResult{}, f.err
	}
	level, ok := f.stock[productID]
	if !ok {
		return ports.StockDecrementResult{Outcome: ports.StockProductMissing}, nil
	}
	if level < quantity {
		return ports.StockDecrementResult{Outcome: ports.StockInsufficient}, nil
	}
	f.stock[productID] = level - quantity
	return ports.StockDecrementResult{Outcome: ports.StockDecremented, NewStock: level - quantity}, nil
}

func (f *fakeInventoryLedger) IncreaseStock(_ context.Context, productID, quantity int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.increases++
	f.stock[productID] += quantity
	return nil
}

func (f *fakeInventoryLedger) stockOf(productID int64) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stock[productID]
}

func validRequest() domain.OrderRequest {
	return domain.OrderRequest{UserID: 1, ProductID: 101, Quantity: 1}
}

func TestPlaceOrder_ConfirmsAndAppends(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{101: 5})
	svc := NewService(repo, users, ledger)

	order, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(1), order.ID)
	require.Equal(t, domain.StatusConfirmed, order.Status)
	require.EqualValues(t, 4, ledger.stockOf(101))

	all, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestPlaceOrder_ValidationSkipsRemoteCalls(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{101: 5})
	svc := NewService(repo, users, ledger)

	cases := []struct {
		name string
		req  domain.OrderRequest
		want error
	}{
		{"zero quantity", domain.OrderRequest{UserID: 1, ProductID: 101, Quantity: 0}, domain.ErrInvalidQuantity},
		{"negative quantity", domain.OrderRequest{UserID: 1, ProductID: 101, Quantity: -3}, domain.ErrInvalidQuantity},
		{"zero user", domain.OrderRequest{UserID: 0, ProductID: 101, Quantity: 1}, domain.ErrInvalidUserID},
		{"zero product", domain.OrderRequest{UserID: 1, ProductID: 0, Quantity: 1}, domain.ErrInvalidProductID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}
	require.Zero(t, users.lookups)
	require.Zero(t, ledger.decreases)
	require.Zero(t, repo.appendCall)
}

func TestPlaceOrder_QuantityCap(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{101: 100})
	svc := NewService(repo, users, ledger, WithMaxQuantity(10))

	_, err := svc.PlaceOrder(context.Background(), domain.OrderRequest{UserID: 1, ProductID: 101, Quantity: 11})
	require.ErrorIs(t, err, domain.ErrQuantityTooLarge)
	require.Zero(t, users.lookups)
}

func TestPlaceOrder_UserNotFound(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory() // empty directory
	ledger := newFakeInventoryLedger(map[int64]int64{101: 5})
	svc := NewService(repo, users, ledger)

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUserNotFound)
	require.Zero(t, ledger.decreases, "ledger must not be called when the user lookup fails")
	require.Zero(t, repo.appendCall)
}

func TestPlaceOrder_UserDirectoryUnavailable(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory(1)
	users.err = &ports.UnavailableError{Service: ports.ServiceUser, Err: errors.New("connection refused")}
	ledger := newFakeInventoryLedger(map[int64]int64{101: 5})
	svc := NewService(repo, users, ledger)

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	var unavailable *ports.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, ports.ServiceUser, unavailable.Service)
	require.Zero(t, ledger.decreases)
	require.Zero(t, repo.appendCall)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{101: 0})
	svc := NewService(repo, users, ledger)

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Zero(t, repo.appendCall)
	require.EqualValues(t, 0, ledger.stockOf(101), "a refused decrement must not change stock")
}

func TestPlaceOrder_ProductNotFound(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{})
	svc := NewService(repo, users, ledger)

	_, err := svc.PlaceOrder(context.Background(), domain.OrderRequest{UserID: 1, ProductID: 999, Quantity: 1})
	require.ErrorIs(t, err, ErrProductNotFound)
	require.Zero(t, repo.appendCall)
}

func TestPlaceOrder_LedgerUnavailable(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{101: 5})
	ledger.err = &ports.UnavailableError{Service: ports.ServiceProduct, Err: errors.New("timeout")}
	svc := NewService(repo, users, ledger)

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	var unavailable *ports.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, ports.ServiceProduct, unavailable.Service)
	require.Zero(t, repo.appendCall)
}

func TestPlaceOrder_CompensatesWhenAppendFails(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.appendErr = errors.New("store rejected the append")
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{101: 5})
	svc := NewService(repo, users, ledger)

	_, err := svc.PlaceOrder(context.Background(), domain.OrderRequest{UserID: 1, ProductID: 101, Quantity: 2})
	require.Error(t, err)
	require.Equal(t, 1, ledger.increases, "failed append must re-increment the decremented stock")
	require.EqualValues(t, 5, ledger.stockOf(101))
}

func TestPlaceOrder_ConcurrentPlacementsGetGaplessIDs(t *testing.T) {
	const placements = 50

	repo := ordersmemory.NewRepository()
	users := newFakeUserDirectory(1)
	ledger := newFakeInventoryLedger(map[int64]int64{101: placements})
	svc := NewService(repo, users, ledger)

	ids := make(chan int64, placements)
	var wg sync.WaitGroup
	for i := 0; i < placements; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := svc.PlaceOrder(context.Background(), validRequest())
			require.NoError(t, err)
			ids <- order.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, placements)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	for id := int64(1); id <= placements; id++ {
		require.True(t, seen[id], "missing id %d", id)
	}
	require.EqualValues(t, 0, ledger.stockOf(101))
}

func TestListOrdersByUser_RejectsInvalidID(t *testing.T) {
	svc := NewService(newFakeOrderRepo(), newFakeUserDirectory(), newFakeInventoryLedger(nil))
	_, err := svc.ListOrdersByUser(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrInvalidUserID)
}
