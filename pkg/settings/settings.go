package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	fileName = "settings.yaml"
	appDir   = "workvibe"
)

// Settings — локальные настройки клиента.
//
// Theme: любое значение, кроме "light", читается как тёмная тема.
// OverlayDismissed: true — заставка при старте не показывается.
type Settings struct {
	Theme            Theme `yaml:"theme"`
	OverlayDismissed bool  `yaml:"overlay_dismissed"`
}

func Default() Settings {
	return Settings{Theme: ThemeDark}
}

// Toggle flips between light and dark.
func (s *Settings) Toggle() {
	if s.Theme == ThemeLight {
		s.Theme = ThemeDark
		return
	}
	s.Theme = ThemeLight
}

// Effective returns the theme to paint with: the intro overlay is always dark.
func (s Settings) Effective(overlayVisible bool) Theme {
	if overlayVisible || s.Theme != ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// DefaultPath returns <user config dir>/workvibe/settings.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads settings from path. A missing file gives the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings: %w", err)
	}
	if s.Theme != ThemeLight {
		s.Theme = ThemeDark
	}
	return s, nil
}

// Save writes settings to path, creating the directory.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
