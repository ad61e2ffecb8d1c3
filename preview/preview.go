// Package preview draws a resolved theme's palette in the terminal.
package preview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"themekit/theme"
)

const (
	roleWidth = 12
	cellWidth = 6
)

// Options controls rendering.
type Options struct {
	// Width is the terminal width in columns; 0 means unknown. When a full
	// labelled row would not fit, swatch cells are drawn without labels.
	Width int
}

// Render writes one line per palette role, each intensity drawn on its own
// color, followed by the miscellaneous and screen size settings.
func Render(w io.Writer, t theme.Tree, opts Options) error {
	r := lipgloss.NewRenderer(w)
	palette, _ := t["palette"].(theme.Tree)

	roles := make([]string, 0, len(palette))
	for role := range palette {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	compact := opts.Width > 0 && opts.Width < roleWidth+cellWidth*len(theme.IntensityKeys)
	label := r.NewStyle().Width(roleWidth).Bold(true)

	var b strings.Builder
	for _, role := range roles {
		sw, ok := palette[role].(theme.Tree)
		if !ok {
			continue
		}
		b.WriteString(label.Render(role))
		fg := lipgloss.Color(foreground(sw))
		for _, key := range theme.IntensityKeys {
			hex, ok := sw[key].(string)
			if !ok {
				continue
			}
			cell := r.NewStyle().Background(lipgloss.Color(hex)).Foreground(fg)
			if compact {
				b.WriteString(cell.Render("  "))
				continue
			}
			b.WriteString(cell.Width(cellWidth).Align(lipgloss.Center).Render(key))
		}
		b.WriteByte('\n')
	}

	if misc, ok := t["miscellaneous"].(theme.Tree); ok {
		b.WriteByte('\n')
		writeSetting(&b, label, "font", fontLine(misc))
		if n, ok := misc["spacing"].(float64); ok {
			writeSetting(&b, label, "spacing", fmt.Sprintf("%g", n))
		}
	}
	if sizes, ok := t["screenSizes"].(theme.Tree); ok {
		writeSetting(&b, label, "screens", screensLine(sizes))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSetting(b *strings.Builder, label lipgloss.Style, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(label.Render(name))
	b.WriteString(value)
	b.WriteByte('\n')
}

func foreground(sw theme.Tree) string {
	if fg, ok := sw[theme.ContrastTextKey].(string); ok {
		return fg
	}
	if sw[theme.ContrastKey] == theme.ContrastDark {
		return "#000000"
	}
	return "#ffffff"
}

func fontLine(misc theme.Tree) string {
	if stack, ok := misc[theme.FontStackKey].(string); ok {
		return stack
	}
	fonts, _ := misc["fontFamily"].([]any)
	parts := make([]string, 0, len(fonts))
	for _, f := range fonts {
		parts = append(parts, fmt.Sprint(f))
	}
	return strings.Join(parts, ", ")
}

// screensLine lists breakpoints from narrowest to widest.
func screensLine(sizes theme.Tree) string {
	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, _ := sizes[names[i]].(float64)
		b, _ := sizes[names[j]].(float64)
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%v", name, sizes[name])
	}
	return strings.Join(parts, " ")
}
