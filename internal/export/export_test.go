package export

import (
	"os"
	"path/filepath"
	"testing"

	"LashMap/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vp = state.Viewport{Width: 800, Height: 400}

func sample() state.Snapshot {
	return state.Snapshot{
		LeftPaths: []state.Path{{
			ID: "p", Region: state.RegionLeft, Kind: state.KindTemplate, TemplateID: "long",
			Points: []state.Point{{X: 200, Y: 150}, {X: 200, Y: 350}}, Color: "red", StrokeWidth: 4,
		}},
		RightLabels: []state.LengthLabel{{ID: "l", Region: state.RegionRight, Length: 12, X: 600, Y: 200}},
	}
}

func TestRenderDrawsPathsInTheirColor(t *testing.T) {
	img, err := Render(sample(), vp, 1)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	r, g, b, _ := img.At(200, 250).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Less(t, g>>8, uint32(60))
	assert.Less(t, b>>8, uint32(60))

	// Top corners stay blank paper.
	r, g, b, _ = img.At(5, 5).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestRenderScales(t *testing.T) {
	img, err := Render(state.Snapshot{}, vp, 2)
	require.NoError(t, err)
	assert.Equal(t, 1600, img.Bounds().Dx())
}

func TestFileWritesPNGAndPDF(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"map.png", "map.PDF"} {
		path := filepath.Join(dir, name)
		require.NoError(t, File(path, sample(), vp), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	data, err := os.ReadFile(filepath.Join(dir, "map.PDF"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFileRejectsUnknownFormat(t *testing.T) {
	err := File(filepath.Join(t.TempDir(), "map.svg"), sample(), vp)
	assert.ErrorContains(t, err, "unsupported")
}
