package css_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwell/webfontgen/css"
	"github.com/foldwell/webfontgen/format"
)

func filePool() map[format.Format]*format.FontFile {
	return map[format.Format]*format.FontFile{
		format.EOT:   format.New("fonts/a", format.EOT),
		format.WOFF2: format.New("fonts/a", format.WOFF2),
		format.WOFF:  format.New("fonts/a", format.WOFF),
		format.TTF:   format.New("fonts/a", format.TTF),
		format.SVG:   format.New("fonts/a", format.SVG),
	}
}

func TestGenerate_EotFirstAndContinuationIndent(t *testing.T) {
	var buf bytes.Buffer
	requests := []css.FormatRequest{
		{Format: format.EOT},
		{Format: format.WOFF2},
		{Format: format.WOFF},
		{Format: format.TTF},
		{Format: format.SVG},
	}

	err := css.Generate(&buf, requests, filePool(), "fonts/", "Roboto")
	require.NoError(t, err)

	want := "@font-face {\n" +
		"  font-family: 'Roboto';\n" +
		"  src: url(fonts/a.eot);\n" +
		"  src: url(fonts/a.eot?#iefix) format('embedded-opentype'),\n" +
		"       url(fonts/a.woff2) format('woff2'),\n" +
		"       url(fonts/a.woff) format('woff'),\n" +
		"       url(fonts/a.ttf) format('truetype'),\n" +
		"       url(fonts/a.svg#a) format('svg');\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}

func TestGenerate_NoEotSkipsIEShim(t *testing.T) {
	var buf bytes.Buffer
	requests := []css.FormatRequest{{Format: format.TTF}}

	err := css.Generate(&buf, requests, filePool(), "fonts/", "Roboto")
	require.NoError(t, err)
	assert.Equal(t, "@font-face {\n  font-family: 'Roboto';\n  src: url(fonts/a.ttf) format('truetype');\n}\n", buf.String())
}

func TestGenerate_InlineEotIsTreatedAsNonSpecial(t *testing.T) {
	var buf bytes.Buffer
	requests := []css.FormatRequest{{Format: format.EOT, Inline: true}}

	dir := t.TempDir()
	path := filepath.Join(dir, "a.eot")
	require.NoError(t, os.WriteFile(path, []byte("EOT"), 0o644))
	pool := map[format.Format]*format.FontFile{format.EOT: format.New(path[:len(path)-len(".eot")], format.EOT)}

	err := css.Generate(&buf, requests, pool, "fonts/", "Roboto")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "data:application/vnd.ms-fontobject;base64,RU9U")
	assert.NotContains(t, buf.String(), "iefix")
}

func TestGenerate_InlineFormatEmbedsBase64Data(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.woff")
	require.NoError(t, os.WriteFile(path, []byte("WOFFDATA"), 0o644))

	pool := map[format.Format]*format.FontFile{
		format.WOFF: format.New(path[:len(path)-len(".woff")], format.WOFF),
	}
	requests := []css.FormatRequest{{Format: format.WOFF, Inline: true}}

	var buf bytes.Buffer
	err := css.Generate(&buf, requests, pool, "fonts/", "Roboto")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "url(data:application/font-woff;base64,V09GRkRBVEE=) format('woff')")
}

func TestGenerate_EscapesFontFamily(t *testing.T) {
	var buf bytes.Buffer
	requests := []css.FormatRequest{{Format: format.TTF}}

	err := css.Generate(&buf, requests, filePool(), "fonts/", "My 'Font'\nName")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `font-family: 'My \'Font\'\AName';`)
}

func TestGenerate_BasenameSpacesAndParensArePercentEncoded(t *testing.T) {
	var buf bytes.Buffer
	pool := map[format.Format]*format.FontFile{
		format.TTF: format.New("fonts/my font (bold)", format.TTF),
	}
	requests := []css.FormatRequest{{Format: format.TTF}}

	err := css.Generate(&buf, requests, pool, "fonts/", "Roboto")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "my+font+%28bold%29.ttf")
}

func TestGenerate_LiteralParenInPrefixIsBackslashEscaped(t *testing.T) {
	var buf bytes.Buffer
	requests := []css.FormatRequest{{Format: format.TTF}}

	err := css.Generate(&buf, requests, filePool(), "fonts (v2)/", "Roboto")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `url(fonts\ \(v2\)/a.ttf)`)
}
