package bill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/validation"
)

// newTestService pins the clock so month arithmetic is deterministic.
func newTestService(repo Repository, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	return svc
}

func TestService_CreateFixedBill_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		params        CreateParams
		missingFields []string
	}{
		{
			name:          "AllMissing",
			params:        CreateParams{},
			missingFields: []string{"title", "amount", "category", "due_day"},
		},
		{
			name: "DueDayZero",
			params: CreateParams{
				Title:    "Internet",
				Amount:   9990,
				Category: "Casa",
				DueDay:   0,
			},
			missingFields: []string{"due_day"},
		},
		{
			name: "DueDayTooLarge",
			params: CreateParams{
				Title:    "Internet",
				Amount:   9990,
				Category: "Casa",
				DueDay:   32,
			},
			missingFields: []string{"due_day"},
		},
		{
			name: "NoTitle",
			params: CreateParams{
				Amount:   9990,
				Category: "Casa",
				DueDay:   10,
			},
			missingFields: []string{"title"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)

			svc := newTestService(repo, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))

			_, err := svc.CreateFixedBill(context.Background(), tc.params)

			var vErr *validation.Error

			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.missingFields, vErr.Fields)
		})
	}
}

func TestService_GenerateInstances(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	// October has 31 days, November only 30: a due day of 31 must land on
	// November 30 instead of rolling into December.
	now := time.Date(2024, time.October, 20, 9, 30, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	fixedBillID := uuid.New()
	spaceID := uuid.New()

	fb := &FixedBill{
		ID:       fixedBillID,
		SpaceID:  spaceID,
		Title:    "Cartão",
		Amount:   150000,
		Category: "Contas",
		DueDay:   31,
		IsActive: true,
	}

	repo.EXPECT().GetFixedBill(gomock.Any(), fixedBillID).Return(fb, nil)

	var dueDates []time.Time

	repo.EXPECT().
		InsertMonthlyBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mb *MonthlyBill) (bool, error) {
			assert.Equal(t, fixedBillID, mb.FixedBillID)
			assert.Equal(t, spaceID, mb.SpaceID)
			assert.Equal(t, StatusPending, mb.Status)
			assert.Equal(t, int64(150000), mb.Amount)

			dueDates = append(dueDates, mb.DueDate)

			return true, nil
		}).
		Times(13)

	err := svc.GenerateInstances(context.Background(), fixedBillID)
	require.NoError(t, err)

	// Current month through twelve months ahead, one instance each.
	require.Len(t, dueDates, 13)
	assert.Equal(t, time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC), dueDates[0])
	assert.Equal(t, time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC), dueDates[1])
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), dueDates[2])
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), dueDates[4])
	assert.Equal(t, time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC), dueDates[12])
}

func TestService_GenerateInstances_SkipsExistingMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	now := time.Date(2024, time.June, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	fixedBillID := uuid.New()

	fb := &FixedBill{
		ID:       fixedBillID,
		SpaceID:  uuid.New(),
		Title:    "Aluguel",
		Amount:   200000,
		Category: "Casa",
		DueDay:   5,
		IsActive: true,
	}

	repo.EXPECT().GetFixedBill(gomock.Any(), fixedBillID).Return(fb, nil)

	// Every month already has an instance. The repository reports each insert
	// as skipped and generation finishes without error.
	repo.EXPECT().
		InsertMonthlyBill(gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(13)

	err := svc.GenerateInstances(context.Background(), fixedBillID)
	assert.NoError(t, err)
}

func TestService_CreateFixedBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	now := time.Date(2024, time.June, 5, 8, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	fixedBillID := uuid.New()
	spaceID := uuid.New()

	repo.EXPECT().
		CreateFixedBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fb *FixedBill) error {
			assert.Equal(t, "Internet", fb.Title)
			assert.True(t, fb.IsActive)

			fb.ID = fixedBillID

			return nil
		})

	repo.EXPECT().
		GetFixedBill(gomock.Any(), fixedBillID).
		Return(&FixedBill{ID: fixedBillID, SpaceID: spaceID, Title: "Internet", Amount: 9990, DueDay: 10, IsActive: true}, nil)

	repo.EXPECT().
		InsertMonthlyBill(gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(13)

	fb, err := svc.CreateFixedBill(context.Background(), CreateParams{
		SpaceID:  spaceID,
		Title:    "Internet",
		Amount:   9990,
		Category: "Casa",
		DueDay:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, fixedBillID, fb.ID)
}

func TestService_UpdateFixedBill_PropagatesToFuturePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	now := time.Date(2024, time.October, 20, 14, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	fixedBillID := uuid.New()

	fb := &FixedBill{
		ID:       fixedBillID,
		SpaceID:  uuid.New(),
		Title:    "Internet",
		Amount:   9990,
		Category: "Casa",
		DueDay:   10,
		IsActive: true,
	}

	repo.EXPECT().GetFixedBill(gomock.Any(), fixedBillID).Return(fb, nil)

	repo.EXPECT().
		UpdateFixedBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *FixedBill) error {
			assert.Equal(t, "Fibra", got.Title)
			assert.Equal(t, int64(12990), got.Amount)
			assert.Equal(t, 31, got.DueDay)

			return nil
		})

	today := time.Date(2024, time.October, 20, 0, 0, 0, 0, time.UTC)

	// Only future pending instances come back from the repository. The
	// November row must clamp the new due day to the 30th.
	future := []*MonthlyBill{
		{ID: uuid.New(), FixedBillID: fixedBillID, DueDate: time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC), Status: StatusPending},
		{ID: uuid.New(), FixedBillID: fixedBillID, DueDate: time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC), Status: StatusPending},
	}

	repo.EXPECT().ListPendingFrom(gomock.Any(), fixedBillID, today).Return(future, nil)

	var updatedDueDates []time.Time

	repo.EXPECT().
		UpdateMonthlyBill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mb *MonthlyBill) error {
			assert.Equal(t, "Fibra", mb.Title)
			assert.Equal(t, int64(12990), mb.Amount)

			updatedDueDates = append(updatedDueDates, mb.DueDate)

			return nil
		}).
		Times(2)

	_, err := svc.UpdateFixedBill(context.Background(), fixedBillID, UpdateParams{
		Title:    "Fibra",
		Amount:   12990,
		Category: "Casa",
		DueDay:   31,
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}, updatedDueDates)
}

func TestService_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	now := time.Date(2024, time.October, 20, 23, 59, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	fixedBillID := uuid.New()
	today := time.Date(2024, time.October, 20, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		repo.EXPECT().DeactivateFixedBill(gomock.Any(), fixedBillID).Return(nil),
		repo.EXPECT().DeletePendingFrom(gomock.Any(), fixedBillID, today).Return(int64(12), nil),
	)

	err := svc.Archive(context.Background(), fixedBillID)
	assert.NoError(t, err)
}

func TestService_Archive_DeactivationFailureStopsPurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	svc := newTestService(repo, time.Date(2024, time.October, 20, 0, 0, 0, 0, time.UTC))

	fixedBillID := uuid.New()
	dbErr := errors.New("db down")

	repo.EXPECT().DeactivateFixedBill(gomock.Any(), fixedBillID).Return(dbErr)

	err := svc.Archive(context.Background(), fixedBillID)
	assert.ErrorIs(t, err, dbErr)
}

func TestService_UpdateInstance(t *testing.T) {
	paid := StatusPaid
	amount := int64(15500)

	testCases := []struct {
		name   string
		upd    InstanceUpdate
		verify func(t *testing.T, mb *MonthlyBill)
	}{
		{
			name: "MarkPaid",
			upd:  InstanceUpdate{Status: &paid},
			verify: func(t *testing.T, mb *MonthlyBill) {
				assert.Equal(t, StatusPaid, mb.Status)
				assert.Equal(t, int64(9990), mb.Amount)
			},
		},
		{
			name: "AdjustAmountOnly",
			upd:  InstanceUpdate{Amount: &amount},
			verify: func(t *testing.T, mb *MonthlyBill) {
				assert.Equal(t, StatusPending, mb.Status)
				assert.Equal(t, int64(15500), mb.Amount)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)

			svc := newTestService(repo, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

			id := uuid.New()

			repo.EXPECT().
				GetMonthlyBill(gomock.Any(), id).
				Return(&MonthlyBill{ID: id, Amount: 9990, Status: StatusPending}, nil)

			repo.EXPECT().
				UpdateMonthlyBill(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, mb *MonthlyBill) error {
					tc.verify(t, mb)

					return nil
				})

			_, err := svc.UpdateInstance(context.Background(), id, tc.upd)
			assert.NoError(t, err)
		})
	}
}

func TestService_UpdateInstance_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	svc := newTestService(repo, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	id := uuid.New()

	repo.EXPECT().GetMonthlyBill(gomock.Any(), id).Return(nil, ErrNotFound)

	_, err := svc.UpdateInstance(context.Background(), id, InstanceUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}
