package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/matching"
)

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)

	svc := matching.NewService(repo)

	repo.EXPECT().
		FindCategory(gomock.Any(), "UBER EATS SAO PAULO").
		Return("Alimentação", nil)

	category, err := svc.Suggest(context.Background(), "UBER EATS SAO PAULO")
	require.NoError(t, err)
	assert.Equal(t, "Alimentação", category)
}

func TestService_Suggest_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)

	svc := matching.NewService(repo)

	repo.EXPECT().FindCategory(gomock.Any(), "XYZ").Return("", nil)

	category, err := svc.Suggest(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Empty(t, category)
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)

	svc := matching.NewService(repo)

	repo.EXPECT().CreateMapping(gomock.Any(), "uber eats", "Alimentação").Return(nil)

	assert.NoError(t, svc.Learn(context.Background(), "uber eats", "Alimentação"))
}
