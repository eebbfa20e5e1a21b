package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSnapshotUsesCamelCaseKeys(t *testing.T) {
	angle := 15.0
	s := Snapshot{
		LeftPaths: []Path{{ID: "p1", Region: RegionLeft, Points: []Point{{X: 1, Y: 2}}, Color: "black",
			StrokeWidth: 2, Kind: KindTemplate, TemplateID: "long", RotationAngle: &angle}},
		RightLabels:        []LengthLabel{{ID: "l1", Region: RegionRight, Length: 12, X: 600, Y: 200}},
		BackgroundImageRef: "eyes.png",
	}
	data, err := EncodeSnapshot(s)
	require.NoError(t, err)

	for _, key := range []string{`"leftPaths"`, `"rightPaths"`, `"leftLabels"`, `"rightLabels"`,
		`"backgroundImageRef"`, `"templateId"`, `"rotationAngle"`, `"strokeWidth"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestDecodeSnapshotFillsMissingCollections(t *testing.T) {
	s, err := DecodeSnapshot([]byte(`{"leftPaths":[{"id":"a","region":"left","points":[{"x":1,"y":1}],"kind":"drawn"}]}`))
	require.NoError(t, err)

	assert.Len(t, s.LeftPaths, 1)
	assert.NotNil(t, s.RightPaths)
	assert.NotNil(t, s.LeftLabels)
	assert.NotNil(t, s.RightLabels)
	assert.Nil(t, s.LeftPaths[0].RotationAngle)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not json"))
	assert.Error(t, err)
}
