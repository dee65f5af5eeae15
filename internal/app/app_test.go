package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"adviceslip/internal/app/cli"
	"adviceslip/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner implements fx.Shutdowner for testing
type mockShutdowner struct {
	calls int
	err   error
}

func (m *mockShutdowner) Shutdown(...fx.ShutdownOption) error {
	m.calls++
	return m.err
}

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.Nop()
	mockLog.EXPECT().Debug().Return(noopLogger.Debug()).AnyTimes()
	mockLog.EXPECT().Error().Return(noopLogger.Error()).AnyTimes()

	return mockLog
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	shutdowner := &mockShutdowner{}

	application := NewApp(mockCLI, shutdowner, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, shutdowner, application.shutdowner)
	assert.Equal(t, mockLogger, application.log)
}

func Test_execute(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		err          error
		expectedCode int
	}{
		{name: "Success", code: 0, expectedCode: 0},
		{name: "Failure", code: 1, err: errors.New("fetch failed"), expectedCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCLI := cli.NewMockCLI(ctrl)
			mockCLI.EXPECT().Execute().Return(tt.code, tt.err)

			app := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

			assert.Equal(t, tt.expectedCode, app.execute())
		})
	}
}

func Test_Run_ShutsDown(t *testing.T) {
	tests := []struct {
		name        string
		shutdownErr error
	}{
		{name: "Clean shutdown"},
		{name: "Shutdown error is logged", shutdownErr: errors.New("already stopped")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCLI := cli.NewMockCLI(ctrl)
			mockCLI.EXPECT().Execute().Return(0, nil)

			shutdowner := &mockShutdowner{err: tt.shutdownErr}
			app := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

			app.Run()

			assert.Equal(t, 1, shutdowner.calls)

			select {
			case <-app.done:
			default:
				t.Fatal("done channel should be closed")
			}
		})
	}
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockCLI.EXPECT().Execute().Return(0, nil)

	app := NewApp(mockCLI, &mockShutdowner{}, newTestLogger(ctrl))

	var hook fx.Hook

	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	require.NotNil(t, hook.OnStart)
	require.NotNil(t, hook.OnStop)

	require.NoError(t, hook.OnStart(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, hook.OnStop(ctx))
}

func Test_Register_StopTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := NewApp(cli.NewMockCLI(ctrl), &mockShutdowner{}, newTestLogger(ctrl))

	var hook fx.Hook

	Register(&mockLifecycle{onAppend: func(h fx.Hook) { hook = h }}, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, hook.OnStop(ctx), context.Canceled)
}
