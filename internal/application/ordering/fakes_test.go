package ordering

import (
	"context"
	"sort"
	"sync"

	"github.com/backoffice/backend/internal/domain/catalog"
	domain "github.com/backoffice/backend/internal/domain/ordering"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// fakeStore is an in-memory transactional backend. Execute snapshots the
// whole store before running the function and restores it on error, which
// mirrors the rollback the real database performs.
type fakeStore struct {
	orders   map[uuid.UUID]domain.Order
	payments map[uuid.UUID]domain.Payment
	returns  map[uuid.UUID]domain.Return
	products map[uuid.UUID]catalog.Product
	clients  map[uuid.UUID]partner.Client
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:   make(map[uuid.UUID]domain.Order),
		payments: make(map[uuid.UUID]domain.Payment),
		returns:  make(map[uuid.UUID]domain.Return),
		products: make(map[uuid.UUID]catalog.Product),
		clients:  make(map[uuid.UUID]partner.Client),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	c := newFakeStore()
	for k, v := range s.orders {
		v.Lines = append([]domain.OrderLine(nil), v.Lines...)
		c.orders[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.returns {
		c.returns[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.orders = from.orders
	s.payments = from.payments
	s.returns = from.returns
	s.products = from.products
	s.clients = from.clients
}

func (s *fakeStore) addProduct(p *catalog.Product)   { s.products[p.ID] = *p }
func (s *fakeStore) addClient(c *partner.Client)     { s.clients[c.ID] = *c }
func (s *fakeStore) addOrder(o *domain.Order)        { s.orders[o.ID] = *o }
func (s *fakeStore) productStock(id uuid.UUID) int   { p := s.products[id]; return p.Stock }
func (s *fakeStore) paymentCount(id uuid.UUID) (n int) {
	for _, p := range s.payments {
		if p.OrderID == id {
			n++
		}
	}
	return n
}

// fakeUnitOfWork serializes concurrent Execute calls the way the row
// locks inside a real transaction do.
type fakeUnitOfWork struct {
	store *fakeStore
	mu    sync.Mutex
}

func (u *fakeUnitOfWork) Execute(_ context.Context, fn func(tx domain.TxRepositories) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	before := u.store.snapshot()
	if err := fn(&fakeTx{store: u.store}); err != nil {
		u.store.restore(before)
		return err
	}
	return nil
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Orders() domain.OrderRepository     { return &fakeOrderRepo{store: t.store} }
func (t *fakeTx) Payments() domain.PaymentRepository { return &fakePaymentRepo{store: t.store} }
func (t *fakeTx) Returns() domain.ReturnRepository   { return &fakeReturnRepo{store: t.store} }
func (t *fakeTx) Products() catalog.ProductRepository {
	return &fakeProductRepo{store: t.store}
}
func (t *fakeTx) Clients() partner.ClientRepository { return &fakeClientRepo{store: t.store} }

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := r.store.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	o.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return &o, nil
}

func (r *fakeOrderRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeOrderRepo) FindAll(_ context.Context, filter shared.Filter) (*shared.Paginated[domain.Order], error) {
	items := make([]domain.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		if status, ok := filter.Filters["status"]; ok && o.Status.String() != status {
			continue
		}
		items = append(items, o)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].OrderedAt.After(items[j].OrderedAt) })
	page := shared.NewPaginated(items, int64(len(items)), filter.Page, filter.Limit())
	return &page, nil
}

func (r *fakeOrderRepo) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) (*shared.Paginated[domain.Order], error) {
	all, err := r.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Order, 0, len(all.Items))
	for _, o := range all.Items {
		if o.ClientID == clientID {
			items = append(items, o)
		}
	}
	page := shared.NewPaginated(items, int64(len(items)), filter.Page, filter.Limit())
	return &page, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.store.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) Save(_ context.Context, order *domain.Order) error {
	r.store.orders[order.ID] = *order
	return nil
}

type fakePaymentRepo struct {
	store *fakeStore
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	p, ok := r.store.payments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

func (r *fakePaymentRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0)
	for _, p := range r.store.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.Before(out[j].PaidAt) })
	return out, nil
}

func (r *fakePaymentRepo) FindAll(_ context.Context, filter shared.Filter) (*shared.Paginated[domain.Payment], error) {
	items := make([]domain.Payment, 0, len(r.store.payments))
	for _, p := range r.store.payments {
		items = append(items, p)
	}
	page := shared.NewPaginated(items, int64(len(items)), filter.Page, filter.Limit())
	return &page, nil
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	r.store.payments[payment.ID] = *payment
	return nil
}

func (r *fakePaymentRepo) DeleteByOrder(_ context.Context, orderID uuid.UUID) error {
	for id, p := range r.store.payments {
		if p.OrderID == orderID {
			delete(r.store.payments, id)
		}
	}
	return nil
}

type fakeReturnRepo struct {
	store *fakeStore
}

func (r *fakeReturnRepo) FindByOrder(_ context.Context, orderID uuid.UUID) (*domain.Return, error) {
	for _, ret := range r.store.returns {
		if ret.OrderID == orderID {
			out := ret
			return &out, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReturnRepo) ExistsForOrder(_ context.Context, orderID uuid.UUID) (bool, error) {
	for _, ret := range r.store.returns {
		if ret.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReturnRepo) FindAll(_ context.Context, filter shared.Filter) (*shared.Paginated[domain.Return], error) {
	items := make([]domain.Return, 0, len(r.store.returns))
	for _, ret := range r.store.returns {
		items = append(items, ret)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ReturnedAt.After(items[j].ReturnedAt) })
	page := shared.NewPaginated(items, int64(len(items)), filter.Page, filter.Limit())
	return &page, nil
}

func (r *fakeReturnRepo) Create(_ context.Context, ret *domain.Return) error {
	r.store.returns[ret.ID] = *ret
	return nil
}

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.store.products[product.ID] = *product
	return nil
}

type fakeClientRepo struct {
	store *fakeStore
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Client, error) {
	c, ok := r.store.clients[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.store.clients[id]
	return ok, nil
}

func (r *fakeClientRepo) Save(_ context.Context, client *partner.Client) error {
	r.store.clients[client.ID] = *client
	return nil
}
