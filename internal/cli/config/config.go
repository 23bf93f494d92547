// seehuhn.de/go/fillet - tangent arcs between lines and circular arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the configuration of the fillet command.
package config

import (
	"context"
	"fmt"

	"seehuhn.de/go/fillet/shape"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Image formats for the render command.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Config holds all options of the fillet command.
type Config struct {
	Accuracy float64      `koanf:"accuracy"`
	Output   string       `koanf:"output"`
	Verbose  bool         `koanf:"verbose"`
	Render   RenderConfig `koanf:"render"`
}

// RenderConfig holds the options of the render command.
type RenderConfig struct {
	Format    string  `koanf:"format"`
	Width     int     `koanf:"width"`
	Height    int     `koanf:"height"`
	Margin    float64 `koanf:"margin"`
	LineWidth float64 `koanf:"line_width"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Accuracy: shape.DefaultAccuracy,
		Output:   OutputText,
		Render: RenderConfig{
			Format:    FormatPDF,
			Width:     400,
			Height:    400,
			Margin:    20,
			LineWidth: 1.5,
		},
	}
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	if !(c.Accuracy > 0) {
		return fmt.Errorf("accuracy must be positive, got %g", c.Accuracy)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}
	switch c.Render.Format {
	case FormatPDF, FormatPNG:
	default:
		return fmt.Errorf("unknown image format %q (want %s or %s)", c.Render.Format, FormatPDF, FormatPNG)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Margin < 0 || 2*c.Render.Margin >= float64(min(c.Render.Width, c.Render.Height)) {
		return fmt.Errorf("margin %g does not fit a %dx%d image", c.Render.Margin, c.Render.Width, c.Render.Height)
	}
	if !(c.Render.LineWidth > 0) {
		return fmt.Errorf("line width must be positive, got %g", c.Render.LineWidth)
	}
	return nil
}

// configKey is used to store the config in a context.
type configKey struct{}

// NewContext returns a copy of ctx which carries cfg.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or the default config.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	return Default()
}
