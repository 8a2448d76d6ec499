package commands_test

import (
	"context"
	"time"

	"pointofsale/internal/core/application/usecases/commands"
	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCobblerRepository struct{ mock.Mock }

func (m *MockCobblerRepository) Add(ctx context.Context, c *menu.Cobbler) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCobblerRepository) Update(ctx context.Context, c *menu.Cobbler) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCobblerRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Cobbler, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*menu.Cobbler); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCobblerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCobblerRepository) RemoveUntouchedSince(ctx context.Context, t time.Time) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

type MockCobblerUoW struct{ mock.Mock }

func (m *MockCobblerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCobblerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCobblerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCobblerUoW) CobblerRepository() ports.CobblerRepository {
	args := m.Called()
	return args.Get(0).(ports.CobblerRepository)
}

type MockCobblerUoWFactory struct{ mock.Mock }

func (m *MockCobblerUoWFactory) Create() commands.CobblerUoW {
	args := m.Called()
	return args.Get(0).(commands.CobblerUoW)
}

// newMocks wires a factory returning a unit of work returning repo.
func newMocks() (*MockCobblerUoWFactory, *MockCobblerUoW, *MockCobblerRepository) {
	repo := new(MockCobblerRepository)
	uow := new(MockCobblerUoW)
	factory := new(MockCobblerUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}
