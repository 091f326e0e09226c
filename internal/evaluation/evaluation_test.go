package evaluation

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serve(t *testing.T, app *fiber.App) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestEvaluate(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get(PathSuperusers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"timestamp": "t", "execution_time_ms": 12, "user_count": 0, "data": []int{}})
	})
	app.Get(PathTopCountries, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"timestamp": "t", "execution_time_ms": 3, "countries": []int{}})
	})
	app.Get(PathTeamInsights, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusServiceUnavailable).SendString("down")
	})
	app.Get(PathActiveUsers, func(c *fiber.Ctx) error {
		return c.SendString("not json")
	})

	e := New(zap.NewNop().Sugar(), serve(t, app), 2*time.Second)
	res, err := e.Evaluate(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Endpoints, 4)
	require.Equal(t, 200, res.Endpoints[PathSuperusers].Status)
	require.Equal(t, int64(12), res.Endpoints[PathSuperusers].TimeMs)
	require.True(t, res.Endpoints[PathSuperusers].ValidResponse)

	require.Equal(t, int64(3), res.Endpoints[PathTopCountries].TimeMs)
	require.True(t, res.Endpoints[PathTopCountries].ValidResponse)

	require.Equal(t, fiber.StatusServiceUnavailable, res.Endpoints[PathTeamInsights].Status)
	require.False(t, res.Endpoints[PathTeamInsights].ValidResponse)

	require.Equal(t, 200, res.Endpoints[PathActiveUsers].Status)
	require.False(t, res.Endpoints[PathActiveUsers].ValidResponse)
}

func TestEvaluateUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	e := New(zap.NewNop().Sugar(), "http://"+addr, time.Second)
	res, err := e.Evaluate(context.Background())
	require.NoError(t, err)

	for path, r := range res.Endpoints {
		require.False(t, r.ValidResponse, path)
	}
}

func TestEvaluateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(zap.NewNop().Sugar(), "http://127.0.0.1:1", time.Second).Evaluate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
