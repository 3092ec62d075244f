package logger

import "testing"

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", "local", ""} {
		l, err := New(env)
		if err != nil {
			t.Fatalf("New(%q): %v", env, err)
		}
		if l == nil {
			t.Fatalf("New(%q) returned nil logger", env)
		}
		_ = l.Sync()
	}
}

func TestIsDevelopment(t *testing.T) {
	cases := map[string]bool{
		"development": true,
		"local":       true,
		"production":  false,
		"staging":     false,
		"":            false,
	}
	for env, want := range cases {
		if got := IsDevelopment(env); got != want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", env, got, want)
		}
	}
}
