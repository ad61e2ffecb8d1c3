package blocks

import "themekit/theme"

// ErrorBlock creates a block for failures, colored with the theme's danger
// color when it has one.
func ErrorBlock(t theme.Tree, name, msg string) Block {
	b := Block{
		Name:                name,
		FullText:            msg,
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
		Urgent:              true,
	}
	if c, ok := theme.ColorFor(t, theme.SeverityDanger); ok {
		b.Color = c
	}
	return b
}
