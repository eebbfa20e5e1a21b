package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialMode(t *testing.T) {
	e, _ := newTestEditor(t)
	assert.Equal(t, ModeTemplate, e.Mode())
	assert.False(t, e.SetMode(Mode(42)))
}

func TestModeSwitchIgnoredDuringGesture(t *testing.T) {
	e, _ := newTestEditor(t)
	require.True(t, e.SetMode(ModeDraw))

	press(e, 100, 100)
	assert.False(t, e.SetMode(ModeErase))
	assert.Equal(t, ModeDraw, e.Mode())
	move(e, 100, 150)
	e.Release()

	assert.True(t, e.SetMode(ModeErase))
	assert.Len(t, e.Snapshot().LeftPaths, 1)
}

func TestModeSwitchKeepsGeometry(t *testing.T) {
	e, rec := newTestEditor(t)
	require.True(t, e.SelectTemplate("long"))
	tap(e, 200, 150)
	e.Flush()
	before := e.Snapshot()

	for _, m := range Modes {
		require.True(t, e.SetMode(m))
	}
	e.Flush()
	assert.Equal(t, before, e.Snapshot())
	assert.Equal(t, 1, rec.count())
}

func TestReadOnlyIgnoresInput(t *testing.T) {
	initial := &Snapshot{LeftPaths: []Path{{ID: "p1", Points: []Point{{1, 1}, {2, 2}}, Kind: KindDrawn}}}
	e, rec := newTestEditor(t, func(o *Options) {
		o.ReadOnly = true
		o.InitialData = initial
	})
	require.True(t, e.SelectTemplate("long"))

	tap(e, 200, 150)
	e.AddLabel(12)
	assert.False(t, e.Undo())
	e.ClearAll()
	e.ClearRegion(RegionLeft)
	e.Flush()

	s := e.Snapshot()
	assert.Len(t, s.LeftPaths, 1)
	assert.Empty(t, s.LeftLabels)
	assert.Zero(t, rec.count())
	assert.True(t, e.ReadOnly())
}

func TestSetInitialDataReplacesOnIdentityChange(t *testing.T) {
	first := &Snapshot{LeftPaths: []Path{{ID: "a", Points: []Point{{1, 1}}, Kind: KindDrawn}}}
	e, rec := newTestEditor(t, func(o *Options) { o.InitialData = first })
	require.True(t, e.SelectTemplate("short"))
	tap(e, 500, 100)
	e.Flush()
	base := rec.count()

	assert.False(t, e.SetInitialData(first), "same record is not reloaded")
	assert.Len(t, e.Snapshot().RightPaths, 1)

	second := &Snapshot{RightLabels: []LengthLabel{{ID: "l", Length: 9, X: 600, Y: 100}}}
	assert.True(t, e.SetInitialData(second))
	s := e.Snapshot()
	assert.Empty(t, s.LeftPaths)
	assert.Empty(t, s.RightPaths)
	require.Len(t, s.RightLabels, 1)
	assert.Equal(t, RegionRight, s.RightLabels[0].Region)

	e.Flush()
	assert.Equal(t, base, rec.count(), "hydration is not a mutation")
}

func TestHydrateDropsGestureInFlight(t *testing.T) {
	e, _ := newTestEditor(t)
	require.True(t, e.SetMode(ModeDraw))
	press(e, 100, 100)

	e.Hydrate(Snapshot{})
	_, drawing := e.Preview()
	assert.False(t, drawing)
	assert.True(t, e.SetMode(ModeLabel))
}

func TestSnapshotJSONShape(t *testing.T) {
	e, _ := newTestEditor(t, func(o *Options) { o.BackgroundImageRef = "eyes/default.png" })
	require.True(t, e.SelectTemplate("long"))
	tap(e, 200, 150)

	data, err := json.Marshal(e.Snapshot())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"leftPaths", "rightPaths", "leftLabels", "rightLabels", "metadata"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "eyes/default.png", raw["backgroundImageRef"])
	assert.Equal(t, []any{}, raw["rightPaths"], "empty collections serialize as arrays")

	path := raw["leftPaths"].([]any)[0].(map[string]any)
	assert.Equal(t, "template", path["kind"])
	assert.Equal(t, "long", path["templateId"])
	assert.NotContains(t, path, "rotationAngle")

	meta := raw["metadata"].(map[string]any)
	assert.Equal(t, "2026-03-14T09:30:00Z", meta["created"])
	assert.Equal(t, "2026-03-14T09:30:00Z", meta["updated"])
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	e, _ := newTestEditor(t)
	require.True(t, e.SelectTemplate("long"))
	tap(e, 200, 150)
	require.True(t, e.SetMode(ModeRotate))
	press(e, 200, 350)
	move(e, 300, 150)
	e.Release()

	s := e.Snapshot()
	*s.LeftPaths[0].RotationAngle = 5
	s.LeftPaths[0].Points[0].X = -1

	fresh := e.Snapshot().LeftPaths[0]
	assert.NotEqual(t, 5.0, fresh.Rotation())
	assert.Equal(t, 200.0, fresh.Start().X)
}
