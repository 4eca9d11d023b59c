// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"github.com/TylerBrock/colorjson"
	fatihcolor "github.com/fatih/color"
)

// NewJSONFormatter returns a colorjson formatter that colours its output
// exactly when on is true.
//
// colorjson paints through fatih/color, which disables itself when stdout is
// not a terminal, and paints keys even when DisabledColor is set. Each colour
// is switched explicitly so the caller's decision is the one that holds.
func NewJSONFormatter(on bool) *colorjson.Formatter {
	f := colorjson.NewFormatter()
	f.DisabledColor = !on

	for _, c := range []*fatihcolor.Color{f.KeyColor, f.StringColor, f.BoolColor, f.NumberColor, f.NullColor} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}
