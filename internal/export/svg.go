// Package export renders stored trajectories as SVG.
package export

import (
	"fmt"
	"strings"
)

// Path is one body's trajectory in world coordinates.
type Path struct {
	Name  string
	Color string
	X, Y  []float64
}

// SystemToSVG draws every trajectory into a single SVG with shared
// bounds, plus a marker at the origin for the star.
func SystemToSVG(paths []Path, width, height int) string {
	if len(paths) == 0 {
		return ""
	}

	// Shared bounds across all paths, origin included.
	minX, maxX, minY, maxY := 0.0, 0.0, 0.0, 0.0
	for _, p := range paths {
		for i := range p.X {
			if p.X[i] < minX {
				minX = p.X[i]
			}
			if p.X[i] > maxX {
				maxX = p.X[i]
			}
			if p.Y[i] < minY {
				minY = p.Y[i]
			}
			if p.Y[i] > maxY {
				maxY = p.Y[i]
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toScreen := func(x, y float64) (float64, float64) {
		sx := (x - minX) / rangeX * float64(width)
		sy := float64(height) - (y-minY)/rangeY*float64(height)
		return sx, sy
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
`, width, height, width, height))

	for _, p := range paths {
		if len(p.X) < 2 {
			continue
		}
		color := p.Color
		if color == "" {
			color = "#00ff00"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i := range p.X {
			sx, sy := toScreen(p.X[i], p.Y[i])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", sx, sy))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", sx, sy))
			}
		}
		sb.WriteString("\"/>\n")
	}

	ox, oy := toScreen(0, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#ffdd44"/>
</svg>`, ox, oy))

	return sb.String()
}
