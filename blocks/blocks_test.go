package blocks

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themekit/theme"
)

func TestFromTheme(t *testing.T) {
	t.Parallel()

	row := FromTheme(theme.Resolve(nil))
	require.Len(t, row, 9)

	roles := make([]string, len(row))
	for i, b := range row {
		roles[i] = b.Instance
	}
	assert.Equal(t, []string{"danger", "dark", "light", "orange", "primary", "safe", "secondary", "tertiary", "warn"}, roles)

	light := row[2]
	assert.Equal(t, " light ", light.FullText)
	assert.Equal(t, "l", light.ShortText)
	assert.Equal(t, "#ffffff", light.Background)
	assert.Equal(t, "#000000", light.Color)

	primary := row[4]
	assert.Equal(t, "#a3a948", primary.Background)
	assert.Equal(t, "#ffffff", primary.Color)
}

func TestFromUntransformedTheme(t *testing.T) {
	t.Parallel()

	row := FromTheme(theme.Tree{"palette": theme.Tree{
		"ink":   theme.Tree{"500": "#111111", theme.ContrastKey: theme.ContrastLight},
		"paper": theme.Tree{"500": "#eeeeee", theme.ContrastKey: theme.ContrastDark},
		"empty": theme.Tree{theme.ContrastKey: theme.ContrastDark},
	}})
	require.Len(t, row, 2)
	assert.Equal(t, "#ffffff", row[0].Color)
	assert.Equal(t, "#000000", row[1].Color)

	assert.Empty(t, FromTheme(theme.Tree{}))
}

func TestFromThemeShortText(t *testing.T) {
	t.Parallel()

	row := FromTheme(theme.Tree{"palette": theme.Tree{
		"":      theme.Tree{"500": "#111111"},
		"ñandu": theme.Tree{"500": "#222222"},
		"\xff":  theme.Tree{"500": "#333333"},
	}})
	require.Len(t, row, 3)
	assert.Equal(t, "", row[0].ShortText)
	assert.Equal(t, "ñ", row[1].ShortText)
	assert.Equal(t, "\xff", row[2].Instance)
	assert.Equal(t, "", row[2].ShortText)
}

func TestFromThemeRejectsEmptyRoleBeforeRendering(t *testing.T) {
	t.Parallel()

	resolved := theme.Resolve(theme.Tree{"palette": theme.Tree{
		"": theme.Tree{"500": "#000000", theme.ContrastKey: theme.ContrastDark},
	}})
	row := FromTheme(resolved)
	require.Len(t, row, 9)
	for _, b := range row {
		assert.NotEmpty(t, b.Instance)
	}
}

func TestErrorBlock(t *testing.T) {
	t.Parallel()

	b := ErrorBlock(theme.DefaultTheme(), "themekit", "theme err")
	assert.Equal(t, "#f05455", b.Color)
	assert.True(t, b.Urgent)

	b = ErrorBlock(theme.Tree{}, "themekit", "theme err")
	assert.Empty(t, b.Color)
}

func TestWriteProtocol(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteProtocol(&buf, []Block{{FullText: "a"}}, []Block{{FullText: "b"}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `{"version":1}`, lines[0])
	assert.Equal(t, "[", lines[1])
	assert.Equal(t, "[]", lines[2])

	for i, want := range []string{"a", "b"} {
		line := lines[3+i]
		require.True(t, strings.HasPrefix(line, ","))
		var row []Block
		require.NoError(t, json.Unmarshal([]byte(line[1:]), &row))
		require.Len(t, row, 1)
		assert.Equal(t, want, row[0].FullText)
	}
}
