package vcs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoComputesOnceWhenPresent(t *testing.T) {
	t.Parallel()

	var m memo[string]
	calls := 0
	compute := func() (string, bool) {
		calls++
		return "main", true
	}

	require.False(t, m.attempted())
	for i := 0; i < 3; i++ {
		v, ok := m.get(compute)
		require.True(t, ok)
		require.Equal(t, "main", v)
	}
	require.Equal(t, 1, calls)
	require.True(t, m.attempted())
}

func TestMemoRemembersAbsence(t *testing.T) {
	t.Parallel()

	var m memo[int]
	calls := 0
	compute := func() (int, bool) {
		calls++
		return 0, false
	}

	for i := 0; i < 3; i++ {
		_, ok := m.get(compute)
		require.False(t, ok)
	}
	require.Equal(t, 1, calls)
	require.True(t, m.attempted())
}
