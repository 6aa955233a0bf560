package model_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/fpl-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func TestContainer(t *testing.T) {
	t.Parallel()

	rendered := model.Container("Players", 40, 6, "Salah", true)
	require.Contains(t, rendered, "Players")
	require.Contains(t, rendered, "Salah")
	require.Equal(t, 6, lipgloss.Height(rendered))

	require.Empty(t, model.Container("Players", 2, 6, "Salah", false))
	require.Empty(t, model.Container("Players", 40, 1, "Salah", false))
}
