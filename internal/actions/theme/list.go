package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/ui/style"
)

// List shows every theme with a color preview.
func List(b *binder.Bound) error {
	return list(b, DefaultDeps())
}

func list(_ *binder.Bound, deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = style.ResolveThemeName("default")
	} else {
		current = style.ResolveThemeName(current)
	}

	deps.Println("Available themes (* = current)\n")

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}

		theme := deps.Themes[name]
		preview := renderColorPreview(theme)

		deps.Printf("%s%-16s  %s\n", marker, name, preview)
	}

	deps.Println("\nUse 'moray theme set <name>' to change")

	return nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted)
}
