package health_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/workvibe/pkg/health"
	"github.com/artem13815/workvibe/pkg/health/checkers"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestReady(t *testing.T) {
	boom := errors.New("boom")

	assert.NoError(t, health.NewService().Ready(context.Background()))
	assert.NoError(t, health.NewService(nil, stubChecker{name: "ok"}).Ready(context.Background()))

	err := health.NewService(stubChecker{name: "ok"}, stubChecker{name: "postgres", err: boom}).Ready(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "postgres")
}

func TestDirChecker(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, checkers.NewDirChecker(dir).Check(context.Background()))
	assert.Error(t, checkers.NewDirChecker(filepath.Join(dir, "missing")).Check(context.Background()))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Error(t, checkers.NewDirChecker(file).Check(context.Background()))
}

func TestPingCheckerTimesOut(t *testing.T) {
	c := checkers.NewPingChecker("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.Equal(t, "slow", c.Name())
	assert.ErrorIs(t, c.Check(context.Background()), context.DeadlineExceeded)
}
