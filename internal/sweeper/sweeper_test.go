package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestSweep(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(e *MockExpirer, o *MockObserver)
	}{
		{
			name: "Expired some",
			prepareMock: func(e *MockExpirer, o *MockObserver) {
				e.EXPECT().ExpireExhausted(gomock.Any()).Return(int64(3), nil)
				o.EXPECT().ObserveSweep(int64(3))
			},
		},
		{
			name: "Nothing to do",
			prepareMock: func(e *MockExpirer, o *MockObserver) {
				e.EXPECT().ExpireExhausted(gomock.Any()).Return(int64(0), nil)
				o.EXPECT().ObserveSweep(int64(0))
			},
		},
		{
			name: "Repository failure is not observed",
			prepareMock: func(e *MockExpirer, o *MockObserver) {
				e.EXPECT().ExpireExhausted(gomock.Any()).Return(int64(0), errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			expirer := NewMockExpirer(ctrl)
			observer := NewMockObserver(ctrl)
			tt.prepareMock(expirer, observer)

			New(expirer, observer, time.Minute).Sweep(context.Background())
		})
	}
}

func TestRunStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	expirer := NewMockExpirer(ctrl)
	observer := NewMockObserver(ctrl)

	swept := make(chan struct{}, 1)
	expirer.EXPECT().ExpireExhausted(gomock.Any()).Return(int64(1), nil).MinTimes(1)
	observer.EXPECT().ObserveSweep(int64(1)).Do(func(int64) {
		select {
		case swept <- struct{}{}:
		default:
		}
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(expirer, observer, 10*time.Millisecond).Run(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweeper never ran")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
	assert.Error(t, ctx.Err())
}
