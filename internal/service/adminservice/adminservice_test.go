package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestReset(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		expectedErr error
	}{
		{name: "Success"},
		{name: "Repository failure", repoErr: errors.New("tx aborted"), expectedErr: errors.New("tx aborted")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepo(ctrl)
			repo.EXPECT().Reset(gomock.Any()).Return(tt.repoErr)

			err := New(repo).Reset(context.Background())
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}
