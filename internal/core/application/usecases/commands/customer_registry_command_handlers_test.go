package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("stores a locked customer", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRegisterCustomerCommand(customer.Contact{
			Name:  "Mary Jones",
			Phone: "705-555-0001",
			Email: "mary@example.com",
		}, true)
		require.NoError(t, err)

		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CustomerRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.MatchedBy(func(c *customer.Customer) bool {
				return c.ID().IsEqual(cmd.CustomerID()) && c.Locked() && c.Email() == "mary@example.com"
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockCustomerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRegisterCustomerCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewRegisterCustomerCommand(customer.Contact{Name: "Mary Jones", Phone: "705-555-0001"}, false)

		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("Add", mock.Anything, mock.Anything).Return(errs.NewConflictError("phone", "705-555-0001")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockCustomerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRegisterCustomerCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := commands.NewRegisterCustomerCommand(customer.Contact{Phone: "705-555-0001"}, false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("replaces contact and unlocks", func(t *testing.T) {
		ctx := t.Context()
		c := newTestCustomer(t, customer.Contact{Name: "JOHN SMITH", Phone: "705-555-1234", Street: "12 Main St"})
		c.Lock()
		cmd, err := commands.NewUpdateCustomerCommand(c.ID(), customer.Contact{Name: "John Smith"}, false)
		require.NoError(t, err)

		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CustomerRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, c.ID()).Return(c, nil).Once(),
			repo.On("Update", mock.Anything, c).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockCustomerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCustomerCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, "John Smith", c.Name())
		assert.Empty(t, c.Phone())
		assert.Empty(t, c.Street())
		assert.False(t, c.Locked())
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewUpdateCustomerCommand(id, customer.Contact{Name: "John Smith"}, true)

		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("customer", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockCustomerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCustomerCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := commands.NewUpdateCustomerCommand(kernel.UUID{}, customer.Contact{}, false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeleteCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteCustomerCommand(id)
		require.NoError(t, err)

		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CustomerRepository").Return(repo).Once(),
			repo.On("Delete", mock.Anything, id).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockCustomerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteCustomerCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		uow.AssertExpectations(t)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewDeleteCustomerCommand(id)

		repo := new(MockCustomerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomerRepository").Return(repo).Once()
		repo.On("Delete", mock.Anything, id).Return(errs.NewObjectNotFoundError("customer", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockCustomerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteCustomerCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
