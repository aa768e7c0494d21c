package theme

import (
	"fmt"

	"github.com/moray-shell/moray/internal/binder"
	"github.com/moray-shell/moray/internal/ui/style"
)

// Set writes the theme config key.
func Set(b *binder.Bound) error {
	return setTheme(b, DefaultDeps())
}

func setTheme(b *binder.Bound, deps Deps) error {
	themeName, _ := b.Positional("name")

	// Accept both bases ("ocean") and explicit variants ("ocean-dark")
	known := false
	if _, ok := deps.Themes[themeName]; ok {
		known = true
	}
	for _, base := range style.BaseThemeNames {
		if themeName == base {
			known = true
		}
	}
	if !known {
		_, _ = deps.Printf("%s unknown theme: %s\n", style.Error("error:"), themeName)
		_, _ = deps.Println("")
		_, _ = deps.Println("available themes:")
		for _, name := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", name)
		}
		return fmt.Errorf("unknown theme: %s", themeName)
	}

	lines, err := deps.ReadLines()
	if err != nil {
		return err
	}

	lines, _ = deps.Set(lines, "theme", themeName)

	if err := deps.WriteLines(lines); err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(themeName))

	return nil
}
