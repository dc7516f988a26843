package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/lorrc/restaurant-console/internal/core/domain"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// MockAPIClient is a mock implementation of ports.APIClient
type MockAPIClient struct {
	mock.Mock
}

func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

func (m *MockAPIClient) Do(ctx context.Context, req ports.Request, out any) error {
	args := m.Called(ctx, req, out)
	return args.Error(0)
}

func (m *MockAPIClient) DoPublic(ctx context.Context, req ports.Request, out any) error {
	args := m.Called(ctx, req, out)
	return args.Error(0)
}

// RespondWith returns a Run function that copies value into the out
// argument of Do or DoPublic by round-tripping it through JSON.
func RespondWith(value any) func(mock.Arguments) {
	return func(args mock.Arguments) {
		out := args.Get(2)
		if out == nil {
			return
		}
		data, err := json.Marshal(value)
		if err != nil {
			panic(err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			panic(err)
		}
	}
}

// MockAuthService is a mock implementation of ports.AuthService
type MockAuthService struct {
	mock.Mock
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, reg domain.Registration) (*domain.Account, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.Account, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAuthService) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MockMenuService is a mock implementation of ports.MenuService
type MockMenuService struct {
	mock.Mock
}

func NewMockMenuService() *MockMenuService {
	return &MockMenuService{}
}

func (m *MockMenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, in domain.MenuItemInput) (*domain.MenuItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, id string, in domain.MenuItemInput) (*domain.MenuItem, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderService is a mock implementation of ports.OrderService
type MockOrderService struct {
	mock.Mock
}

func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

func (m *MockOrderService) List(ctx context.Context, params domain.ListParams) (*domain.OrderList, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderList), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockSupportService is a mock implementation of ports.SupportService
type MockSupportService struct {
	mock.Mock
}

func NewMockSupportService() *MockSupportService {
	return &MockSupportService{}
}

func (m *MockSupportService) List(ctx context.Context, params domain.ListParams) (*domain.TicketList, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketList), args.Error(1)
}

func (m *MockSupportService) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.SupportTicket, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportTicket), args.Error(1)
}

// MockNotifier is a mock implementation of ports.Notifier
type MockNotifier struct {
	mock.Mock
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Notify(ctx context.Context, n domain.Notification) {
	m.Called(ctx, n)
}
