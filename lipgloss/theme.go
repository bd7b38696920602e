// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/docdiff"

// Compile-time interface verification.
var _ docdiff.Theme = (*Theme)(nil)

// Theme implements docdiff.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles docdiff.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() docdiff.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Block backgrounds are very dark so the text on top stays readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: docdiff.Styles{
			Added: docdiff.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green
			},
			Removed: docdiff.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red
			},
			Modified: docdiff.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#32302a", // Very dark yellow
			},
			Context: docdiff.ColorPair{
				Foreground: "#6c7086", // Muted gray (dimmed for change visibility)
			},
			Placeholder: docdiff.ColorPair{
				Foreground: "#45475a", // Muted gray (subtle)
			},
			Ghost: docdiff.ColorPair{
				Foreground: "#585b70", // Dim gray for opposite-side previews
			},
			AddedHighlight: docdiff.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#a6e3a1", // Bright green background
			},
			RemovedHighlight: docdiff.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8", // Bright red background
			},
			Summary: docdiff.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: docdiff.Styles{
			Added: docdiff.ColorPair{
				Foreground: "#40a02b", // Green
				Background: "#d4f4d4", // Subtle green background
			},
			Removed: docdiff.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Modified: docdiff.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#f4ecd4", // Subtle yellow background
			},
			Context: docdiff.ColorPair{
				Foreground: "#9ca0b0", // Muted gray (dimmed for change visibility)
			},
			Placeholder: docdiff.ColorPair{
				Foreground: "#bcc0cc", // Muted gray (subtle for light)
			},
			Ghost: docdiff.ColorPair{
				Foreground: "#acb0be", // Dim gray for opposite-side previews
			},
			AddedHighlight: docdiff.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#40a02b", // Bright green background
			},
			RemovedHighlight: docdiff.ColorPair{
				Foreground: "#ffffff", // White text on dark background
				Background: "#d20f39", // Bright red background
			},
			Summary: docdiff.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
		},
	}
}
