package libraryservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gameshop/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestCheck(t *testing.T) {
	games := []domain.Game{{ID: 1, Name: "Hades"}, {ID: 2, Name: "Celeste"}, {ID: 3, Name: "Inside"}}

	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo)
		offending   []string
		expectedErr error
	}{
		{
			name: "Nothing owned",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Owned(gomock.Any(), 1, []int{1, 2, 3}).Return(nil, nil)
			},
		},
		{
			name: "Reports every owned game",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Owned(gomock.Any(), 1, []int{1, 2, 3}).Return([]domain.LibraryEntry{
					{GameID: 1, Name: "Hades"},
					{GameID: 3, Name: "Inside"},
				}, nil)
			},
			offending:   []string{"Hades", "Inside"},
			expectedErr: domain.ErrAlreadyOwned,
		},
		{
			name: "Repository error",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Owned(gomock.Any(), 1, []int{1, 2, 3}).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			err := service.Check(context.Background(), 1, games)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			if tt.offending == nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
			var owned *domain.AlreadyOwnedError
			assert.True(t, errors.As(err, &owned))
			names := make([]string, len(owned.Games))
			for i, g := range owned.Games {
				names[i] = g.Name
			}
			assert.Equal(t, tt.offending, names)
		})
	}
}

func TestCheckEmpty(t *testing.T) {
	service, _ := NewMock(t)

	assert.NoError(t, service.Check(context.Background(), 1, nil))
}

func TestGrant(t *testing.T) {
	service, repo := NewMock(t)
	items := []domain.CartItem{{GameID: 1}, {GameID: 2}}

	repo.EXPECT().Grant(gomock.Any(), 1, 9, items).Return(1, nil)
	assert.NoError(t, service.Grant(context.Background(), 1, 9, items))

	repo.EXPECT().Grant(gomock.Any(), 1, 9, items).Return(0, errors.New("db error"))
	assert.Error(t, service.Grant(context.Background(), 1, 9, items))
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().List(gomock.Any(), 1).Return([]domain.LibraryEntry{{GameID: 4, Name: "Tunic"}}, nil)

	entries, err := service.List(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Tunic", entries[0].Name)
}
