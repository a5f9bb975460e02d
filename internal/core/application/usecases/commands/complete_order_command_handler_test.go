package commands_test

import (
	"testing"
	"time"

	"roomservice/internal/core/application/usecases/commands"
	"roomservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd := commands.CompleteOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
}

func TestCompleteOrderCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "completes active order"},
		{name: "unknown order", repoErr: errs.NewObjectNotFoundError("order", int64(5)), wantErr: errs.ErrObjectNotFound},
		{
			name:    "already completed",
			repoErr: errs.NewInvalidStateError("order", "completed", "complete"),
			wantErr: errs.ErrInvalidState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewCompleteOrderCommand(5)
			require.NoError(t, err)

			before := time.Now().UTC()
			repo := new(MockOrderRepository)
			repo.On("MarkCompleted", ctx, int64(5), mock.MatchedBy(func(at time.Time) bool {
				return !at.Before(before) && at.Location() == time.UTC
			})).Return(tc.repoErr).Once()

			uow := new(MockUoW)
			uow.On("OrderRepository").Return(repo).Once()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCompleteOrderCommandHandler(factory)
			err = h.Handle(ctx, cmd)

			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
			repo.AssertExpectations(t)
			uow.AssertNotCalled(t, "Begin", mock.Anything)
		})
	}
}
