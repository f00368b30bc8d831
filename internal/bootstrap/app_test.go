package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := New()
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run error is returned and hooks still run", func(t *testing.T) {
		app := New()
		closed := false
		app.AddCloser("db", func() error {
			closed = true
			return nil
		})

		want := errors.New("listen failed")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
		assert.True(t, closed)
	})

	t.Run("shutdown hooks run in reverse order on context cancel", func(t *testing.T) {
		app := New()
		var mu sync.Mutex
		var order []string
		record := func(name string) func(context.Context) error {
			return func(context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			}
		}
		app.AddShutdownHook("db", record("db"))
		app.AddShutdownHook("gateway", record("gateway"))
		app.AddShutdownHook("http", record("http"))

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"http", "gateway", "db"}, order)
	})

	t.Run("hooks run once and registered from inside run", func(t *testing.T) {
		app := New()
		calls := 0

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook("http", func(ctx context.Context) error {
				calls++
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("run is awaited after shutdown", func(t *testing.T) {
		app := New()
		stopped := make(chan struct{})
		app.AddShutdownHook("http", func(ctx context.Context) error {
			close(stopped)
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := app.Run(ctx, func(ctx context.Context) error {
			<-stopped
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("hook errors are joined with their names", func(t *testing.T) {
		app := New(WithShutdownTimeout(time.Second))
		hookErr := errors.New("close failed")
		app.AddShutdownHook("db", func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return hookErr
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.ErrorIs(t, err, hookErr)
		assert.Contains(t, err.Error(), "db > close failed")
	})
}
