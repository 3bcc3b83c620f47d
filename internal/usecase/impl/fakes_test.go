package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"kasir/internal/domain/entity"
	"kasir/internal/domain/repository"
	"kasir/internal/domain/service"
)

// Shared in-memory doubles for the service tests. They implement the
// repository and service interfaces over plain maps so the tests exercise the
// real service logic without a store.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func key(businessID, id string) string {
	return businessID + "/" + id
}

// --- allocator ---

type stubAllocator struct {
	ids  []string
	next int
	err  error
}

func (a *stubAllocator) Allocate(_ context.Context, _ int, _ service.ExistsFunc) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	if a.next >= len(a.ids) {
		return "", io.ErrUnexpectedEOF
	}
	id := a.ids[a.next]
	a.next++

	return id, nil
}

// --- publisher ---

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.TransactionEvent
	err    error
}

func (p *recordingPublisher) PublishTransactionEvent(_ context.Context, event *service.TransactionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// --- cart item repository ---

type fakeCartItemRepo struct {
	mu       sync.Mutex
	items    map[string]*entity.CartItem
	listErr  error
	claimErr error
}

func newFakeCartItemRepo() *fakeCartItemRepo {
	return &fakeCartItemRepo{items: make(map[string]*entity.CartItem)}
}

func (r *fakeCartItemRepo) FindByID(_ context.Context, businessID, itemID string) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[key(businessID, itemID)]
	if !ok {
		return nil, repository.ErrCartItemNotFound
	}
	cp := *item

	return &cp, nil
}

func (r *fakeCartItemRepo) Exists(_ context.Context, businessID, itemID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[key(businessID, itemID)]

	return ok, nil
}

func (r *fakeCartItemRepo) Create(_ context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[key(item.BusinessID, item.ID)] = &cp

	return nil
}

func (r *fakeCartItemRepo) ListUnassigned(_ context.Context, businessID string) ([]*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.CartItem
	for _, item := range r.items {
		if item.BusinessID == businessID && item.Unassigned() {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *fakeCartItemRepo) UpdateCount(_ context.Context, businessID, itemID string, count int64, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[key(businessID, itemID)]
	if !ok {
		return repository.ErrCartItemNotFound
	}
	item.Count = count
	item.UpdatedAt = updatedAt

	return nil
}

func (r *fakeCartItemRepo) Claim(_ context.Context, businessID, itemID, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claimErr != nil {
		return r.claimErr
	}
	item, ok := r.items[key(businessID, itemID)]
	if !ok {
		return repository.ErrCartItemNotFound
	}
	item.TransactionID = transactionID

	return nil
}

func (r *fakeCartItemRepo) Delete(_ context.Context, businessID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key(businessID, itemID))

	return nil
}

// --- transaction repository ---

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions map[string]*entity.Transaction
	createErr    error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[string]*entity.Transaction)}
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, businessID, transactionID string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[key(businessID, transactionID)]
	if !ok {
		return nil, repository.ErrTransactionNotFound
	}
	cp := *tx

	return &cp, nil
}

func (r *fakeTransactionRepo) Exists(_ context.Context, businessID, transactionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.transactions[key(businessID, transactionID)]

	return ok, nil
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *transaction
	r.transactions[key(transaction.BusinessID, transaction.ID)] = &cp

	return nil
}

func (r *fakeTransactionRepo) ListByCreatedDesc(_ context.Context, businessID string) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.BusinessID == businessID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

// --- transaction manager ---

// fakeTxManager mimics the store transaction contract: on any error from fn
// the writes are rolled back by restoring the pre-transaction snapshot.
type fakeTxManager struct {
	cartRepo        *fakeCartItemRepo
	transactionRepo *fakeTransactionRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	itemsBefore := make(map[string]*entity.CartItem, len(m.cartRepo.items))
	for k, v := range m.cartRepo.items {
		cp := *v
		itemsBefore[k] = &cp
	}
	txBefore := make(map[string]*entity.Transaction, len(m.transactionRepo.transactions))
	for k, v := range m.transactionRepo.transactions {
		cp := *v
		txBefore[k] = &cp
	}

	if err := fn(m); err != nil {
		m.cartRepo.items = itemsBefore
		m.transactionRepo.transactions = txBefore

		return err
	}

	return nil
}

func (m *fakeTxManager) CartItems() repository.CartItemRepository { return m.cartRepo }

func (m *fakeTxManager) Transactions() repository.TransactionRepository { return m.transactionRepo }

// --- product repository ---

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) FindByID(_ context.Context, businessID, productID string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[key(businessID, productID)]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *product

	return &cp, nil
}

func (r *fakeProductRepo) Exists(_ context.Context, businessID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.products[key(businessID, productID)]

	return ok, nil
}

func (r *fakeProductRepo) ExistsByName(_ context.Context, businessID, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range r.products {
		if product.BusinessID == businessID && product.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products[key(product.BusinessID, product.ID)] = &cp

	return nil
}

func (r *fakeProductRepo) ListByCreatedDesc(_ context.Context, businessID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, product := range r.products {
		if product.BusinessID == businessID {
			cp := *product
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *fakeProductRepo) SearchByPrefix(_ context.Context, businessID, prefix string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, product := range r.products {
		if product.BusinessID != businessID {
			continue
		}
		for _, p := range product.Prefixes {
			if p == prefix {
				cp := *product
				out = append(out, &cp)

				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *fakeProductRepo) Patch(_ context.Context, businessID, productID string, patch *entity.ProductPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[key(businessID, productID)]
	if !ok {
		return repository.ErrProductNotFound
	}
	if patch.Name != nil {
		product.Name = *patch.Name
		product.Prefixes = patch.Prefixes
	}
	if patch.Cost != nil {
		product.Cost = *patch.Cost
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	product.UpdatedAt = patch.UpdatedAt

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, businessID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, key(businessID, productID))

	return nil
}

// --- business repository ---

type fakeBusinessRepo struct {
	mu         sync.Mutex
	businesses map[string]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[string]*entity.Business)}
}

func (r *fakeBusinessRepo) FindByID(_ context.Context, businessID string) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	business, ok := r.businesses[businessID]
	if !ok {
		return nil, repository.ErrBusinessNotFound
	}
	cp := *business

	return &cp, nil
}

func (r *fakeBusinessRepo) Exists(_ context.Context, businessID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.businesses[businessID]

	return ok, nil
}

func (r *fakeBusinessRepo) Create(_ context.Context, business *entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *business
	r.businesses[business.ID] = &cp

	return nil
}

func (r *fakeBusinessRepo) Patch(_ context.Context, businessID string, patch *entity.BusinessPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	business, ok := r.businesses[businessID]
	if !ok {
		return repository.ErrBusinessNotFound
	}
	if patch.Name != nil {
		business.Name = *patch.Name
	}
	if patch.Address != nil {
		business.Address = *patch.Address
	}
	if patch.Province != nil {
		business.Province = *patch.Province
	}
	if patch.City != nil {
		business.City = *patch.City
	}
	if patch.District != nil {
		business.District = *patch.District
	}
	if patch.PostalCode != nil {
		business.PostalCode = *patch.PostalCode
	}
	business.UpdatedAt = patch.UpdatedAt

	return nil
}

// --- user repository ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, userID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *user

	return &cp, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[userID]

	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp

	return nil
}

// --- image store ---

type fakeImageStore struct {
	mu      sync.Mutex
	uploads map[string][]byte
	baseURL string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{uploads: make(map[string][]byte), baseURL: "https://img.test"}
}

func (s *fakeImageStore) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[key] = data

	return s.baseURL + "/" + key, nil
}
