// Package config holds the viewer settings and their persistence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the recognized rendering and interaction options. Every field
// has a default; hosts construct one with Default and override what they need.
type Settings struct {
	// RoundRooms draws room bodies as circles instead of squares.
	RoundRooms bool `json:"isRound"`

	// Scale is the base pixels-per-world-unit factor.
	Scale float64 `json:"scale"`

	// RoomSize is the room footprint on the 20-unit grid.
	RoomSize float64 `json:"roomSize"`

	// ExitsSize drives link line thickness.
	ExitsSize float64 `json:"exitsSize"`

	// Borders outlines room bodies in the default link color.
	Borders bool `json:"borders"`

	// FrameMode draws rooms as colored frames on black fills.
	FrameMode bool `json:"frameMode"`

	// AreaName shows the area display name header.
	AreaName bool `json:"areaName"`

	// ShowLabels toggles text labels.
	ShowLabels bool `json:"showLabels"`

	// UniformLevelSize sizes every level to the whole area's bounds so the
	// view doesn't jump when switching floors.
	UniformLevelSize bool `json:"uniformLevelSize"`

	// TransparentLabels suppresses label background fills.
	TransparentLabels bool `json:"transparentLabels"`

	// MapBackground is the backdrop color, hex encoded.
	MapBackground string `json:"mapBackground"`

	// OptimizeDrag swaps vector layers for a raster snapshot while a drag
	// is in progress.
	OptimizeDrag bool `json:"optimizeDrag"`

	// FontPath points at a TTF used for map text; empty skips text.
	FontPath string `json:"fontPath"`

	// Window dimensions for the interactive viewer.
	WindowWidth  int `json:"windowWidth"`
	WindowHeight int `json:"windowHeight"`
}

// Default returns the settings the original viewer ships with.
func Default() Settings {
	return Settings{
		RoundRooms:        false,
		Scale:             55,
		RoomSize:          10,
		ExitsSize:         2,
		Borders:           false,
		FrameMode:         false,
		AreaName:          true,
		ShowLabels:        true,
		UniformLevelSize:  false,
		TransparentLabels: false,
		MapBackground:     "#000000",
		OptimizeDrag:      true,
		WindowWidth:       1280,
		WindowHeight:      800,
	}
}

// settingsPath returns the persisted settings location.
func settingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mudmap", "settings.json"), nil
}

// Load reads persisted settings, falling back to defaults for anything
// missing or unreadable. A missing file is not an error.
func Load() Settings {
	s := Default()
	path, err := settingsPath()
	if err != nil {
		return s
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	// Ignore malformed files rather than refusing to start.
	_ = json.Unmarshal(raw, &s)
	return s
}

// Save persists the settings for the next run.
func (s Settings) Save() error {
	path, err := settingsPath()
	if err != nil {
		return fmt.Errorf("config: no config dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
