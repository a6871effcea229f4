package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyRecipientsCommandHandler_Handle_ContinuesPastFailures(t *testing.T) {
	ctx := t.Context()
	reached := newPendingParcel(t, nil, "705-555-0001")
	noPhone := newPendingParcel(t, nil, "")
	unanswered := newPendingParcel(t, nil, "705-555-0002")
	broken := newPendingParcel(t, nil, "705-555-0003")
	unknown := kernel.NewUUID()

	cmd, err := commands.NewNotifyRecipientsCommand([]kernel.UUID{
		reached.ID(), noPhone.ID(), unknown, unanswered.ID(), broken.ID(),
	})
	require.NoError(t, err)

	parcels := new(MockParcelRepository)
	parcels.On("Get", mock.Anything, reached.ID()).Return(reached, nil).Once()
	parcels.On("Get", mock.Anything, noPhone.ID()).Return(noPhone, nil).Once()
	parcels.On("Get", mock.Anything, unknown).Return(nil, errs.NewObjectNotFoundError("parcel", unknown.String())).Once()
	parcels.On("Get", mock.Anything, unanswered.ID()).Return(unanswered, nil).Once()
	parcels.On("Get", mock.Anything, broken.ID()).Return(broken, nil).Once()

	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcels).Once()
	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	caller := new(MockCaller)
	caller.On("Call", mock.Anything, "705-555-0001").Return(true, nil).Once()
	caller.On("Call", mock.Anything, "705-555-0002").Return(false, nil).Once()
	caller.On("Call", mock.Anything, "705-555-0003").Return(false, context.DeadlineExceeded).Once()

	h := commands.NewNotifyRecipientsCommandHandler(factory, caller, time.Second, discardLogger())
	results, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.True(t, results[0].Delivered)
	require.NoError(t, results[0].Err)

	require.ErrorIs(t, results[1].Err, errs.ErrValueIsRequired)
	require.ErrorIs(t, results[2].Err, errs.ErrObjectNotFound)

	assert.False(t, results[3].Delivered)
	require.ErrorIs(t, results[3].Err, errs.ErrCollaboratorUnavailable)
	require.ErrorIs(t, results[3].Err, commands.ErrCallNotDelivered)

	require.ErrorIs(t, results[4].Err, errs.ErrCollaboratorUnavailable)
	require.ErrorIs(t, results[4].Err, context.DeadlineExceeded)
	assert.NotErrorIs(t, results[4].Err, commands.ErrCallNotDelivered)
	assert.Equal(t, "705-555-0003", results[4].Phone)

	uow.AssertNotCalled(t, "Begin", mock.Anything)
	caller.AssertExpectations(t)
}

func TestNotifyRecipientsCommandHandler_Handle_CallerErrorsKeepTheirType(t *testing.T) {
	ctx := t.Context()
	p := newPendingParcel(t, nil, "705-555-0001")
	cmd, _ := commands.NewNotifyRecipientsCommand([]kernel.UUID{p.ID()})

	parcels := new(MockParcelRepository)
	parcels.On("Get", mock.Anything, p.ID()).Return(p, nil).Once()
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcels).Once()
	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	adapterErr := errs.NewCollaboratorError("call system", errors.New("503 Service Unavailable"))
	caller := new(MockCaller)
	caller.On("Call", mock.Anything, "705-555-0001").Return(false, adapterErr).Once()

	h := commands.NewNotifyRecipientsCommandHandler(factory, caller, 0, discardLogger())
	results, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Same(t, adapterErr, results[0].Err)
}

func TestNewNotifyRecipientsCommand_EmptySelection(t *testing.T) {
	_, err := commands.NewNotifyRecipientsCommand(nil)
	require.ErrorIs(t, err, commands.ErrEmptySelection)
}
