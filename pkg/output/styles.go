package output

import "github.com/charmbracelet/lipgloss"

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	successColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	errorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	mutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	pathColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	validStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(pathColor)

	messageStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
