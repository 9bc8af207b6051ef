package alertview

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bullseye-app/bullseye/internal/analysis"
)

func TestService_MarkViewed(t *testing.T) {
	memberID := uuid.New()

	tests := []struct {
		name      string
		alertID   string
		setupMock func(m *MockRepository)
		wantErr   bool
	}{
		{
			name:    "Success",
			alertID: "exceeded-Groceries-October-2025",
			setupMock: func(m *MockRepository) {
				m.EXPECT().UpsertView(gomock.Any(), &View{
					MemberID: memberID,
					AlertID:  "exceeded-Groceries-October-2025",
				}).Return(nil)
			},
		},
		{
			name:      "EmptyAlertID",
			alertID:   "",
			setupMock: func(m *MockRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			tt.setupMock(repo)

			err := NewService(repo).MarkViewed(context.Background(), memberID, tt.alertID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestFilterNew(t *testing.T) {
	alerts := []analysis.Alert{
		{ID: "exceeded-Groceries-October-2025"},
		{ID: "warning-Transport-October-2025"},
	}

	views := []*View{
		{AlertID: "exceeded-Groceries-October-2025"},
	}

	annotated, fresh := FilterNew(alerts, views)

	require.Len(t, annotated, 2)
	assert.True(t, annotated[0].Acknowledged)
	assert.False(t, annotated[1].Acknowledged)

	require.Len(t, fresh, 1)
	assert.Equal(t, "warning-Transport-October-2025", fresh[0].ID)

	// The input is untouched.
	assert.False(t, alerts[0].Acknowledged)
}

func TestFilterNew_NoViews(t *testing.T) {
	alerts := []analysis.Alert{{ID: "a"}, {ID: "b"}}

	annotated, fresh := FilterNew(alerts, nil)

	assert.Equal(t, alerts, annotated)
	assert.Equal(t, alerts, fresh)
}

func TestService_Annotate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	memberID := uuid.New()

	repo.EXPECT().ListViews(gomock.Any(), memberID).Return([]*View{
		{MemberID: memberID, AlertID: "a"},
	}, nil)

	annotated, fresh, err := NewService(repo).Annotate(context.Background(), memberID, []analysis.Alert{
		{ID: "a"},
		{ID: "b"},
	})
	require.NoError(t, err)

	require.Len(t, annotated, 2)
	assert.True(t, annotated[0].Acknowledged)
	require.Len(t, fresh, 1)
	assert.Equal(t, "b", fresh[0].ID)
}
