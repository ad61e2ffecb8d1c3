// Package blocks renders a resolved theme as an i3bar/swaybar row so a
// palette can be previewed directly in the bar.
package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"themekit/theme"
)

// Block represents an i3bar protocol block.
// Only fields actually needed now; others can be added later.
type Block struct {
	Name                string `json:"name,omitempty"`
	Instance            string `json:"instance,omitempty"`
	FullText            string `json:"full_text"`
	ShortText           string `json:"short_text,omitempty"`
	Color               string `json:"color,omitempty"`
	Background          string `json:"background,omitempty"`
	Separator           bool   `json:"separator"`
	SeparatorBlockWidth int    `json:"separator_block_width,omitempty"`
	Urgent              bool   `json:"urgent,omitempty"`
	Markup              string `json:"markup,omitempty"`
}

const SeparatorWidth = 12

// FromTheme returns one block per palette role, sorted by role name. Each
// block shows the role on its base (500) color using the swatch's contrast
// foreground. Roles without a base color are skipped.
func FromTheme(t theme.Tree) []Block {
	palette, _ := t["palette"].(theme.Tree)
	roles := make([]string, 0, len(palette))
	for role := range palette {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	out := make([]Block, 0, len(roles))
	for _, role := range roles {
		base, ok := theme.LookupString(palette, role, "500")
		if !ok {
			continue
		}
		out = append(out, Block{
			Name:                "palette",
			Instance:            role,
			FullText:            " " + role + " ",
			ShortText:           initial(role),
			Color:               foreground(palette, role),
			Background:          base,
			Separator:           false,
			SeparatorBlockWidth: SeparatorWidth,
		})
	}
	return out
}

// initial returns the first rune of s, or "" for an empty or invalid s.
func initial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return s[:size]
}

func foreground(palette theme.Tree, role string) string {
	if fg, ok := theme.LookupString(palette, role, theme.ContrastTextKey); ok {
		return fg
	}
	if c, _ := theme.LookupString(palette, role, theme.ContrastKey); c == theme.ContrastDark {
		return "#000000"
	}
	return "#ffffff"
}

// Writer emits rows using the i3bar protocol. The header and the opening
// empty array are written before the first row; every subsequent row is
// comma-prefixed, as the protocol requires.
type Writer struct {
	w       io.Writer
	buf     bytes.Buffer
	started bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRow writes one row, emitting the protocol header first if needed.
func (pw *Writer) WriteRow(row []Block) error {
	if !pw.started {
		if _, err := io.WriteString(pw.w, "{\"version\":1}\n[\n[]\n"); err != nil {
			return err
		}
		pw.started = true
	}
	pw.buf.Reset()
	if err := json.NewEncoder(&pw.buf).Encode(row); err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	_, err := fmt.Fprintf(pw.w, ",%s\n", bytes.TrimRight(pw.buf.Bytes(), "\n"))
	return err
}

// WriteProtocol writes rows to w as a complete protocol stream.
func WriteProtocol(w io.Writer, rows ...[]Block) error {
	pw := NewWriter(w)
	for _, row := range rows {
		if err := pw.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}
