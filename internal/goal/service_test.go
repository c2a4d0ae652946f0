package goal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/goal"
	"github.com/carteira-app/carteira/internal/validation"
)

func TestGoal_Progress(t *testing.T) {
	testCases := []struct {
		name string
		goal goal.Goal
		want float64
	}{
		{
			name: "Halfway",
			goal: goal.Goal{TargetAmount: 100000, CurrentAmount: 50000},
			want: 50,
		},
		{
			name: "OverfundedClampsTo100",
			goal: goal.Goal{TargetAmount: 100000, CurrentAmount: 130000},
			want: 100,
		},
		{
			name: "NegativeBalanceClampsToZero",
			goal: goal.Goal{TargetAmount: 100000, CurrentAmount: -5000},
			want: 0,
		},
		{
			name: "ZeroTarget",
			goal: goal.Goal{TargetAmount: 0, CurrentAmount: 5000},
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.goal.Progress(), 0.001)
		})
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	svc := goal.NewService(repo)

	spaceID := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *goal.Goal) error {
			assert.Equal(t, "Viagem", g.Title)
			assert.Equal(t, int64(1000000), g.TargetAmount)
			assert.Equal(t, goal.StatusActive, g.Status)
			assert.Zero(t, g.CurrentAmount)

			g.ID = uuid.New()

			return nil
		})

	g, err := svc.Create(context.Background(), goal.CreateParams{
		SpaceID:      spaceID,
		Title:        "Viagem",
		TargetAmount: 1000000,
		Icon:         "✈️",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, g.ID)
}

func TestService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	svc := goal.NewService(repo)

	_, err := svc.Create(context.Background(), goal.CreateParams{
		Title:        "",
		TargetAmount: -100,
	})

	var vErr *validation.Error

	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"title", "target_amount"}, vErr.Fields)
}

func TestService_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	svc := goal.NewService(repo)

	id := uuid.New()

	// 400 stored, deposit 100, the increment lands on the repository as-is
	// and the returned goal reflects the new balance.
	repo.EXPECT().
		AddToCurrent(gomock.Any(), id, int64(10000)).
		Return(&goal.Goal{ID: id, TargetAmount: 100000, CurrentAmount: 50000}, nil)

	g, err := svc.Deposit(context.Background(), id, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), g.CurrentAmount)
	assert.InDelta(t, 50, g.Progress(), 0.001)
}

func TestService_Deposit_ZeroAmountRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	svc := goal.NewService(repo)

	_, err := svc.Deposit(context.Background(), uuid.New(), 0)

	var vErr *validation.Error

	assert.ErrorAs(t, err, &vErr)
}

func TestService_Deposit_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	svc := goal.NewService(repo)

	id := uuid.New()

	repo.EXPECT().AddToCurrent(gomock.Any(), id, int64(100)).Return(nil, goal.ErrNotFound)

	_, err := svc.Deposit(context.Background(), id, 100)
	assert.ErrorIs(t, err, goal.ErrNotFound)
}

func TestService_Update_PartialFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	svc := goal.NewService(repo)

	id := uuid.New()

	repo.EXPECT().
		Get(gomock.Any(), id).
		Return(&goal.Goal{ID: id, Title: "Viagem", TargetAmount: 1000000, CurrentAmount: 250000}, nil)

	newTarget := int64(800000)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *goal.Goal) error {
			assert.Equal(t, "Viagem", g.Title)
			assert.Equal(t, int64(800000), g.TargetAmount)
			assert.Equal(t, int64(250000), g.CurrentAmount)

			return nil
		})

	_, err := svc.Update(context.Background(), id, goal.UpdateParams{TargetAmount: &newTarget})
	assert.NoError(t, err)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := goal.NewMockRepository(ctrl)

	svc := goal.NewService(repo)

	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(goal.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), goal.ErrNotFound)
}
