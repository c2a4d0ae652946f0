package space_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/space"
)

func TestService_Resolve(t *testing.T) {
	userID := uuid.New()
	memberSpaceID := uuid.New()
	ownedSpaceID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *space.MockRepository)
		want      uuid.UUID
		wantErr   error
	}

	tests := []testCase{
		{
			name: "MembershipWins",
			setupMock: func(m *space.MockRepository) {
				m.EXPECT().
					FindMembershipSpace(gomock.Any(), userID).
					Return(memberSpaceID, nil)
			},
			want: memberSpaceID,
		},
		{
			name: "OwnerFallback",
			setupMock: func(m *space.MockRepository) {
				m.EXPECT().
					FindMembershipSpace(gomock.Any(), userID).
					Return(uuid.Nil, space.ErrNotFound)
				m.EXPECT().
					FindOwnedSpace(gomock.Any(), userID).
					Return(ownedSpaceID, nil)
			},
			want: ownedSpaceID,
		},
		{
			name: "NothingFound",
			setupMock: func(m *space.MockRepository) {
				m.EXPECT().
					FindMembershipSpace(gomock.Any(), userID).
					Return(uuid.Nil, space.ErrNotFound)
				m.EXPECT().
					FindOwnedSpace(gomock.Any(), userID).
					Return(uuid.Nil, space.ErrNotFound)
			},
			wantErr: space.ErrNotFound,
		},
		{
			name: "MembershipLookupError",
			setupMock: func(m *space.MockRepository) {
				m.EXPECT().
					FindMembershipSpace(gomock.Any(), userID).
					Return(uuid.Nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := space.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := space.NewService(repo)
			got, err := svc.Resolve(context.Background(), userID)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, space.ErrNotFound) {
					assert.ErrorIs(t, err, space.ErrNotFound)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ResolveOrCreate_SelfHealing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	newSpaceID := uuid.New()

	repo := space.NewMockRepository(ctrl)
	repo.EXPECT().FindMembershipSpace(gomock.Any(), userID).Return(uuid.Nil, space.ErrNotFound)
	repo.EXPECT().FindOwnedSpace(gomock.Any(), userID).Return(uuid.Nil, space.ErrNotFound)
	repo.EXPECT().
		CreateWithMember(gomock.Any(), gomock.Any(), space.RoleAdmin).
		DoAndReturn(func(_ context.Context, sp *space.Space, _ string) error {
			assert.Equal(t, space.DefaultName, sp.Name)
			assert.Equal(t, userID, sp.OwnerID)
			sp.ID = newSpaceID
			return nil
		})

	svc := space.NewService(repo)

	got, err := svc.ResolveOrCreate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, newSpaceID, got)
}

func TestService_ResolveOrCreate_SecondCallFindsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	spaceID := uuid.New()

	// After the first self-healing call the membership row exists, so the
	// creation path must not run again.
	repo := space.NewMockRepository(ctrl)
	repo.EXPECT().FindMembershipSpace(gomock.Any(), userID).Return(spaceID, nil)

	svc := space.NewService(repo)

	got, err := svc.ResolveOrCreate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, spaceID, got)
}

func TestService_ResolveOrCreate_CreationFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := space.NewMockRepository(ctrl)
	repo.EXPECT().FindMembershipSpace(gomock.Any(), userID).Return(uuid.Nil, space.ErrNotFound)
	repo.EXPECT().FindOwnedSpace(gomock.Any(), userID).Return(uuid.Nil, space.ErrNotFound)
	repo.EXPECT().
		CreateWithMember(gomock.Any(), gomock.Any(), space.RoleAdmin).
		Return(errors.New("insert rejected"))

	svc := space.NewService(repo)

	_, err := svc.ResolveOrCreate(context.Background(), userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not create workspace")
}

func TestService_JoinByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := space.NewMockRepository(ctrl)
	repo.EXPECT().
		JoinByCode(gomock.Any(), "abc123", userID).
		Return(&space.JoinResult{Success: true, Message: "Bem-vindo ao espaço!"}, nil)

	svc := space.NewService(repo)

	res, err := svc.JoinByCode(context.Background(), "abc123", userID)
	require.NoError(t, err)
	assert.True(t, res.Success)
}
