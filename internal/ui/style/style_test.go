package style

import (
	"os"
	"strings"
	"testing"
)

func TestDisabledReturnsPlainText(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("MORAY_NO_COLOR")

	Init(false, nil)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Success", Success},
		{"Warning", Warning},
		{"Error", Error},
		{"Info", Info},
		{"Header", Header},
		{"Muted", Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if output != input {
				t.Errorf("%s() with disabled styling: got %q, want %q", tt.name, output, input)
			}

			if strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with disabled styling contains ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("MORAY_NO_COLOR")

	Init(true, nil)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Success", Success},
		{"Warning", Warning},
		{"Error", Error},
		{"Info", Info},
		{"Header", Header},
		{"Muted", Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if !strings.Contains(output, input) {
				t.Errorf("%s() output %q does not contain input %q", tt.name, output, input)
			}

			if !strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with enabled styling should contain ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	Init(true, nil)

	if Enabled() {
		t.Error("Enabled() should return false when NO_COLOR is set")
	}

	input := "test"
	output := Success(input)
	if output != input {
		t.Errorf("Success() should return plain text when NO_COLOR is set: got %q, want %q", output, input)
	}
}

func TestMorayNoColorEnvDisablesStyling(t *testing.T) {
	t.Setenv("MORAY_NO_COLOR", "1")

	Init(true, nil)

	if Enabled() {
		t.Error("Enabled() should return false when MORAY_NO_COLOR is set")
	}

	input := "test"
	output := Warning(input)
	if output != input {
		t.Errorf("Warning() should return plain text when MORAY_NO_COLOR is set: got %q, want %q", output, input)
	}
}

func TestEnabledReturnsCorrectState(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("MORAY_NO_COLOR")

	Init(false, nil)
	if Enabled() {
		t.Error("Enabled() should return false after Init(false, nil)")
	}

	Init(true, nil)
	if !Enabled() {
		t.Error("Enabled() should return true after Init(true, nil)")
	}
}

func TestResolveThemeNameKeepsExplicitSuffix(t *testing.T) {
	if got := ResolveThemeName("ocean-dark"); got != "ocean-dark" {
		t.Errorf("ResolveThemeName(\"ocean-dark\") = %q, want \"ocean-dark\"", got)
	}
	if got := ResolveThemeName("mono-light"); got != "mono-light" {
		t.Errorf("ResolveThemeName(\"mono-light\") = %q, want \"mono-light\"", got)
	}
}

func TestLoadColorConfigOverrides(t *testing.T) {
	t.Setenv("MORAY_THEME", "contrast-dark")
	t.Setenv("MORAY_COLOR_SUCCESS", "99")

	cfg := map[string]string{
		"color_error": "200",
	}

	colors := LoadColorConfig(cfg)

	if colors.Success != "99" {
		t.Errorf("env override: Success = %q, want \"99\"", colors.Success)
	}
	if colors.Error != "200" {
		t.Errorf("config override: Error = %q, want \"200\"", colors.Error)
	}
	// Untouched fields come from the theme
	want := Themes["contrast-dark"]
	if colors.Info != want.Info {
		t.Errorf("Info = %q, want theme value %q", colors.Info, want.Info)
	}
}

func TestLoadColorConfigUnknownThemeFallsBack(t *testing.T) {
	t.Setenv("MORAY_THEME", "nonexistent-dark")

	colors := LoadColorConfig(nil)

	want := Themes["default-dark"]
	if colors.Success != want.Success || colors.Error != want.Error {
		t.Errorf("unknown theme should fall back to default-dark, got %+v", colors)
	}
}

func TestAllThemesHaveVariants(t *testing.T) {
	for _, base := range BaseThemeNames {
		for _, suffix := range []string{"-dark", "-light"} {
			name := base + suffix
			theme, ok := Themes[name]
			if !ok {
				t.Errorf("theme %q missing from Themes map", name)
				continue
			}
			if theme.Success == "" || theme.Error == "" || theme.Header == "" {
				t.Errorf("theme %q has empty color fields: %+v", name, theme)
			}
		}
	}
}

func TestEmptyStringHandling(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("MORAY_NO_COLOR")

	Init(false, nil)
	if got := Success(""); got != "" {
		t.Errorf("Success(\"\") with disabled styling: got %q, want \"\"", got)
	}
}
