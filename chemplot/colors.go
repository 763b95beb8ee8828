/*
 * colors.go, part of lmpdata.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
package chemplot

import (
	"image/color"
	"math"
)

//hsv2rgb takes hue (0-360), value and saturation (0-1), and returns the
//corresponding opaque color.
func hsv2rgb(h, v, s float64) color.RGBA {
	conv := func(x float64) uint8 { return uint8(math.Round(255 * x)) }
	if s == 0 {
		return color.RGBA{R: conv(v), G: conv(v), B: conv(v), A: 255}
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: conv(r), G: conv(g), B: conv(b), A: 255}
}

//colors returns the color number key in a palette of steps colors,
//going from red to violet and skipping the yellows, which look bad on white.
func colors(key, steps int) color.RGBA {
	if steps < 1 {
		steps = 1
	}
	hp := float64(key)*260.0/float64(steps) + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return hsv2rgb(h, 0.9, 0.8)
}
