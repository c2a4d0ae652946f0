package profile_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/profile"
	"github.com/carteira-app/carteira/internal/validation"
)

func TestService_Get_MissingProfileComesBackEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := profile.NewMockRepository(ctrl)

	svc := profile.NewService(repo)

	id := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(nil, profile.ErrNotFound)

	p, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Empty(t, p.FullName)
}

func TestService_UpdateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := profile.NewMockRepository(ctrl)

	svc := profile.NewService(repo)

	id := uuid.New()

	repo.EXPECT().
		UpsertName(gomock.Any(), id, "Maria Silva").
		Return(&profile.Profile{ID: id, FullName: "Maria Silva"}, nil)

	p, err := svc.UpdateName(context.Background(), id, "Maria Silva")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", p.FullName)
}

func TestService_UpdateName_RequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := profile.NewMockRepository(ctrl)

	svc := profile.NewService(repo)

	_, err := svc.UpdateName(context.Background(), uuid.New(), "")

	var vErr *validation.Error

	assert.ErrorAs(t, err, &vErr)
}
