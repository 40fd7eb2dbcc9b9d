package ui

import "testing"

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	tests := []struct {
		name     string
		expected string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.expected {
			t.Errorf("SetTheme(%q): active theme = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestInitThemeRespectsNoColorFlag(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Error("InitTheme(true) should disable colors")
	}
	if ColorGreen() != "" || ColorReset() != "" {
		t.Error("NoColorTheme accessors should return empty strings")
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("InitTheme should honor NO_COLOR")
	}
}

func TestColorAccessorsFollowTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success {
		t.Error("ColorGreen should return the dark theme success code")
	}
	SetCurrentTheme(LightTheme)
	if ColorRed() != LightTheme.Error {
		t.Error("ColorRed should return the light theme error code")
	}
}
