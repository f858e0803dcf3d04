package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sweetrecords/storefront/internal/domain"
	"github.com/sweetrecords/storefront/pkg/config"
	"github.com/sweetrecords/storefront/pkg/events"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
			OTPTTL:     10 * time.Minute,
		},
		Email: config.EmailConfig{
			ShopInbox: "shop@example.com",
		},
	}
}

// mockUserRepo keeps users in memory and enforces email uniqueness the way
// the real store's unique index does.
type mockUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*domain.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return nil, fmt.Errorf("%w: %s", domain.ErrConflict, email)
		}
	}

	m.nextID++
	u := &domain.User{
		ID:           m.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         domain.RoleCustomer,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

// mockOTPRepo is an in-memory ledger keeping only the latest code per email.
type mockOTPRepo struct {
	mu    sync.Mutex
	codes map[string]struct {
		code      string
		createdAt time.Time
	}
}

func newMockOTPRepo() *mockOTPRepo {
	return &mockOTPRepo{codes: make(map[string]struct {
		code      string
		createdAt time.Time
	})}
}

func (m *mockOTPRepo) Put(ctx context.Context, email, code string, createdAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = struct {
		code      string
		createdAt time.Time
	}{code, createdAt}
	return nil
}

func (m *mockOTPRepo) GetLatest(ctx context.Context, email string) (string, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.codes[email]
	if !ok {
		return "", time.Time{}, nil
	}
	return entry.code, entry.createdAt, nil
}

// mockCartRepo mirrors the store's (user_id, product_id) uniqueness.
type mockCartRepo struct {
	mu      sync.Mutex
	nextID  int64
	entries []domain.CartEntry
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{}
}

func (m *mockCartRepo) Add(ctx context.Context, userID, productID int64) (*domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries {
		if e.UserID == userID && e.ProductID == productID {
			return nil, fmt.Errorf("%w: product %d", domain.ErrDuplicate, productID)
		}
	}

	m.nextID++
	e := domain.CartEntry{
		ID:        m.nextID,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	m.entries = append(m.entries, e)
	return &e, nil
}

func (m *mockCartRepo) ListByUser(ctx context.Context, userID int64) ([]domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.CartEntry{}
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockCartRepo) Remove(ctx context.Context, userID, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.UserID == userID && e.ProductID == productID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
}

// mockProductRepo keeps the catalog in memory in insertion order.
type mockProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products []domain.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{}
}

func (m *mockProductRepo) Create(ctx context.Context, name, price, description, imageURL string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	p := domain.Product{
		ID:          m.nextID,
		Name:        name,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
	m.products = append(m.products, p)
	return &p, nil
}

func (m *mockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Product{}
	out = append(out, m.products...)
	return out, nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
}

// mockMailer records what it was asked to send and can be told to fail.
type mockMailer struct {
	mu        sync.Mutex
	failSend  bool
	lastCode  string
	lastTo    string
	orderMail int
}

func (m *mockMailer) SendOTPEmail(toEmail, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSend {
		return fmt.Errorf("smtp unavailable")
	}
	m.lastTo = toEmail
	m.lastCode = code
	return nil
}

func (m *mockMailer) SendOrderEmail(shopInbox string, order *domain.PlaceOrderRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSend {
		return fmt.Errorf("smtp unavailable")
	}
	m.lastTo = shopInbox
	m.orderMail++
	return nil
}

func (m *mockMailer) SendContactEmail(shopInbox string, msg *domain.ContactRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSend {
		return fmt.Errorf("smtp unavailable")
	}
	m.lastTo = shopInbox
	return nil
}

func (m *mockMailer) code() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCode
}

// mockEventBus records published subjects.
type mockEventBus struct {
	mu       sync.Mutex
	subjects []string
}

func (m *mockEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockEventBus) Subscribe(subject string, handler func(msg *events.Message)) error {
	return nil
}

func (m *mockEventBus) QueueSubscribe(subject, queue string, handler func(msg *events.Message)) error {
	return nil
}

func (m *mockEventBus) Close() error { return nil }

func (m *mockEventBus) published(subject string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// mockImageStore returns a deterministic URL.
type mockImageStore struct {
	failUpload bool
	uploads    int
}

func (m *mockImageStore) Upload(ctx context.Context, contentType string, body io.Reader) (string, error) {
	if m.failUpload {
		return "", fmt.Errorf("bucket unavailable")
	}
	m.uploads++
	return fmt.Sprintf("http://images.local/products/%d.png", m.uploads), nil
}
