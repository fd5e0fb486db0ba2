package format_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldwell/webfontgen/format"
)

func TestParse_AcceptsAllSixFormats(t *testing.T) {
	for _, f := range format.All {
		got, err := format.Parse(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestParse_RejectsUnknownTag(t *testing.T) {
	_, err := format.Parse("bmp")
	assert.ErrorIs(t, err, format.ErrUnrecognizedFormat)
}

func TestNew_MaintainsFullPathInvariant(t *testing.T) {
	f := format.New("/out/a", format.WOFF2)
	assert.Equal(t, "/out/a.woff2", f.FullPath)
	assert.Equal(t, "/out/a", f.Stem)
	assert.Equal(t, format.WOFF2, f.Format)
}

func TestMovedAndConvertedTo_JoinsDirWithBasenameOfStem(t *testing.T) {
	f := format.New("/in/sub/a", format.TTF)
	moved := f.MovedAndConvertedTo("/out", format.WOFF)
	assert.Equal(t, filepath.Join("/out", "a")+".woff", moved.FullPath)
	assert.Equal(t, format.WOFF, moved.Format)
}

func TestSVGID_IsBasenameOfStem(t *testing.T) {
	f := format.New("/out/a", format.SVG)
	assert.Equal(t, "a", f.SVGID())
}

func TestBasename(t *testing.T) {
	f := format.New("/out/a", format.TTF)
	assert.Equal(t, "a.ttf", f.Basename())
}
