package style

import (
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/render"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []render.Field{
	{Key: "Kind", Value: "psk"},
	{Key: "SSID", Value: "Home"},
	{Key: "Passphrase", Value: render.Mask},
}

func TestKeyValuesPlain(t *testing.T) {
	want := "Kind:       psk\n" +
		"SSID:       Home\n" +
		"Passphrase: ********\n"
	assert.Equal(t, want, KeyValues(sample, false))
	assert.Equal(t, "", KeyValues(nil, false))
}

func TestKeyValuesRichKeepsText(t *testing.T) {
	out := KeyValues(sample, true)
	for _, f := range sample {
		assert.Contains(t, out, f.Key+":")
		assert.Contains(t, out, f.Value)
	}
	assert.Equal(t, len(sample), strings.Count(out, "\n"))
}

func TestMarkdownTable(t *testing.T) {
	out := MarkdownTable("Cafe", []render.Field{
		{Key: "SSID", Value: "a|b"},
	})
	assert.Equal(t, "# Cafe\n\n| Field | Value |\n|---|---|\n| SSID | a\\|b |\n", out)
}

func TestMarkdownPlainIsUnchanged(t *testing.T) {
	assert.Equal(t, "# Title\n", Markdown("# Title\n", false))
}

func TestMarkdownRendererKeepsText(t *testing.T) {
	r := &MarkdownRenderer{Style: "notty", Width: 60}
	out := r.Render("# Networks\n\nSome **bold** text.\n")
	assert.Contains(t, out, "Networks")
	assert.Contains(t, out, "bold")
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         FormatAuto,
		"auto":     FormatAuto,
		"term":     FormatTerminal,
		"TEXT":     FormatText,
		"plain":    FormatText,
		"json":     FormatJSON,
		"yml":      FormatYAML,
		"markdown": FormatMarkdown,
		"md":       FormatMarkdown,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON, FormatYAML, FormatMarkdown} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "unknown", Format(99).String())
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
	assert.Equal(t, FormatText, FormatAuto.Resolve(os.Stdout))
	assert.Equal(t, FormatJSON, FormatJSON.Resolve(os.Stdout))
}

func TestDetectFormatPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, IsRich(w))
	assert.False(t, IsRich(nil))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "[SUCCEEDED]", Badge(StatusSucceeded, false))
	assert.Equal(t, "[REJECTED]", Badge(StatusRejected, false))
	assert.Contains(t, Badge(StatusFailed, true), "FAILED")
}

func TestStatusStyle(t *testing.T) {
	for _, s := range []Status{StatusSucceeded, StatusFailed, StatusRejected, StatusSkipped, Status("other")} {
		assert.NotNil(t, StatusStyle(s), s)
	}
}

func TestKindStyle(t *testing.T) {
	assert.Contains(t, KindStyle(types.KindPasspoint).Render("passpoint"), "passpoint")
	assert.Contains(t, KindStyle(types.KindUnclassified).Render("unclassified"), "unclassified")
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "Hello", Indent("Hello", 0))
	assert.Equal(t, "    Hello", Indent("Hello", 2))
}
