package usecase

import (
	"context"
	"testing"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryUseCase_List_ProyectaCategorias(t *testing.T) {
	repo := &mockCategoryRepo{}
	repo.On("List", mock.Anything).Return([]*entity.Category{
		{ID: 1, Name: "Home", CreatedAt: fixedNow},
		{ID: 2, Name: "Electronics", CreatedAt: fixedNow},
	}, nil)

	out, err := NewCategoryUseCase(repo).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Electronics", out[1].Name)
	assert.Equal(t, fixedNow, out[0].CreatedAt)
}
