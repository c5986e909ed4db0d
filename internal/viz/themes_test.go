package viz

import "testing"

func TestGetTheme(t *testing.T) {
	if got := GetTheme("ocean"); got.Name != "ocean" {
		t.Errorf("expected ocean theme, got %s", got.Name)
	}
	if got := GetTheme("no-such-theme"); got.Name != ThemeDefault.Name {
		t.Errorf("expected fallback to default, got %s", got.Name)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Fatalf("expected %d names, got %d", len(Themes), len(names))
	}
	for i, n := range names {
		if n != Themes[i].Name {
			t.Errorf("expected %s at index %d, got %s", Themes[i].Name, i, n)
		}
	}
}
