package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gameshop/internal/config"
	"github.com/GlebRadaev/gameshop/internal/metrics"
	"github.com/GlebRadaev/gameshop/internal/sweeper"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestBuild() {
	s.app.cfg = &config.Config{
		Address:            "localhost:0",
		CatalogAddress:     "http://localhost:8081",
		JWTSecret:          "secret",
		TxTimeout:          time.Second,
		CatalogConcurrency: 2,
		SweepInterval:      time.Minute,
	}

	s.app.build(nil, metrics.New(prometheus.NewRegistry()))

	s.NotNil(s.app.repo)
	s.NotNil(s.app.srv)
	s.NotNil(s.app.api)
	s.NotNil(s.app.bg)
	s.NotNil(s.app.srv.PromoService)
}

func (s *ApplicationSuite) TestStartSweeper_StopsWithContext() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	expirer := sweeper.NewMockExpirer(ctrl)
	observer := sweeper.NewMockObserver(ctrl)
	expirer.EXPECT().ExpireExhausted(gomock.Any()).Return(int64(0), nil).AnyTimes()
	observer.EXPECT().ObserveSweep(int64(0)).AnyTimes()
	s.app.bg = sweeper.New(expirer, observer, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startSweeper(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		s.app.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("sweeper did not stop")
	}
}
