package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bullseye-app/bullseye/internal/category"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    category.CreateParams
		setupMock func(m *category.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			params: category.CreateParams{Name: "Groceries", Color: "#4caf50"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cat *category.Category) error {
						cat.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:   "TrimsName",
			params: category.CreateParams{Name: "  Transport  "},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cat *category.Category) error {
						assert.Equal(t, "Transport", cat.Name)
						return nil
					})
			},
		},
		{
			name:    "EmptyName",
			params:  category.CreateParams{Name: "   "},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: category.CreateParams{Name: "Groceries"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(errors.New("duplicate name"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := category.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_ResolveName(t *testing.T) {
	groceries := &category.Category{ID: uuid.New(), Name: "Groceries"}

	t.Run("CurrentNameWins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().FindByName(gomock.Any(), "Groceries").Return(groceries, nil)

		svc := category.NewService(repo)
		got, err := svc.ResolveName(context.Background(), "Groceries")
		require.NoError(t, err)
		assert.Equal(t, groceries.ID, got.ID)
	})

	t.Run("FallsBackToAlias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().FindByName(gomock.Any(), "Food").Return(nil, category.ErrNotFound)
		repo.EXPECT().FindByAlias(gomock.Any(), "Food").Return(groceries, nil)

		svc := category.NewService(repo)
		got, err := svc.ResolveName(context.Background(), "Food")
		require.NoError(t, err)
		assert.Equal(t, groceries.ID, got.ID)
	})

	t.Run("UnknownName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().FindByName(gomock.Any(), "Nope").Return(nil, category.ErrNotFound)
		repo.EXPECT().FindByAlias(gomock.Any(), "Nope").Return(nil, category.ErrNotFound)

		svc := category.NewService(repo)
		_, err := svc.ResolveName(context.Background(), "Nope")
		assert.ErrorIs(t, err, category.ErrNotFound)
	})

	t.Run("EmptyName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)

		svc := category.NewService(repo)
		_, err := svc.ResolveName(context.Background(), "  ")
		assert.ErrorIs(t, err, category.ErrNotFound)
	})
}

func TestService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().RenameCategory(gomock.Any(), id, "Food & Drink").Return(nil)

	svc := category.NewService(repo)
	require.NoError(t, svc.Rename(context.Background(), id, " Food & Drink "))

	assert.Error(t, svc.Rename(context.Background(), id, "  "))
}
