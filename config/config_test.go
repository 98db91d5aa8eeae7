package config

import (
	"os"
	"testing"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	require.NoError(t, os.Setenv("SNAKE_TEST_INT", "42"))
	defer os.Unsetenv("SNAKE_TEST_INT")

	require.Equal(t, 42, getEnvInt("SNAKE_TEST_INT", 7))
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_MISSING", 7))

	require.NoError(t, os.Setenv("SNAKE_TEST_INT", "forty two"))
	require.Equal(t, 7, getEnvInt("SNAKE_TEST_INT", 7))
}

func TestGetEnvCount(t *testing.T) {
	require.NoError(t, os.Setenv("SNAKE_TEST_COUNT", "-3"))
	defer os.Unsetenv("SNAKE_TEST_COUNT")
	require.Equal(t, 16, getEnvCount("SNAKE_TEST_COUNT", 16))

	require.NoError(t, os.Setenv("SNAKE_TEST_COUNT", "0"))
	require.Equal(t, 0, getEnvCount("SNAKE_TEST_COUNT", 16))

	require.NoError(t, os.Setenv("SNAKE_TEST_COUNT", "4"))
	require.Equal(t, 4, getEnvCount("SNAKE_TEST_COUNT", 16))
	require.Equal(t, 16, getEnvCount("SNAKE_TEST_MISSING", 16))
}

func TestGame_Validate(t *testing.T) {
	require.NoError(t, Game{Width: 20, Height: 20, Speed: 100}.Validate())
	require.NoError(t, Game{Width: 1, Height: 1, Speed: 199}.Validate())

	for _, g := range []Game{
		{Width: 0, Height: 20, Speed: 100},
		{Width: 20, Height: 0, Speed: 100},
		{Width: 20, Height: 20, Speed: 0},
		{Width: 20, Height: 20, Speed: 200},
	} {
		err := g.Validate()
		require.True(t, errors.Is(err, rules.ErrInvalidConfiguration), "%+v", g)
	}
}

func TestDefault(t *testing.T) {
	g := Default()
	require.Equal(t, Width, g.Width)
	require.Equal(t, Height, g.Height)
	require.Equal(t, Speed, g.Speed)
}
