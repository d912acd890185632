package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devicelab-dev/swipe-geometry/pkg/geometry"
	"github.com/devicelab-dev/swipe-geometry/pkg/swipe"
)

func samplePlans() []Plan {
	return []Plan{
		{
			Name:       "Feed",
			SourceFile: "plans/feed.yaml",
			Status:     StatusPassed,
			DurationMs: 3,
			Swipes: []Swipe{{
				Index:       0,
				Description: "swipe up",
				Status:      StatusPassed,
				Gesture: &swipe.Gesture{
					Direction: geometry.Up,
					Speed:     swipe.SpeedFast,
					Start:     geometry.Vec(2000, 2917),
					End:       geometry.Vec(2000, 0),
					Precision: swipe.PrecisionFinger,
				},
			}},
		},
		{
			Name:       "Carousel <A&B>",
			SourceFile: "plans/carousel.yaml",
			Status:     StatusFailed,
			Swipes: []Swipe{
				{Index: 0, Description: "first", Status: StatusPassed},
				{Index: 1, Description: "second", Status: StatusFailed, Error: "drag left: \"socket\" closed"},
			},
		},
	}
}

func TestNew(t *testing.T) {
	r := New(samplePlans(), 1500*time.Millisecond)

	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, int64(1500), r.DurationMs)
	assert.Equal(t, Summary{Total: 2, Passed: 1, Failed: 1}, r.Summary)
	assert.Equal(t, StatusFailed, r.Status)

	passing := New(samplePlans()[:1], 0)
	assert.Equal(t, StatusPassed, passing.Status)
	assert.NotEqual(t, r.RunID, passing.RunID)
}

func TestFirstFailure(t *testing.T) {
	plans := samplePlans()
	assert.Nil(t, plans[0].FirstFailure())

	f := plans[1].FirstFailure()
	require.NotNil(t, f)
	assert.Equal(t, "second", f.Description)
}

func TestWriteAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := New(samplePlans(), time.Second)

	require.NoError(t, Write(dir, r))
	_, err := os.Stat(filepath.Join(dir, JSONFile+".tmp"))
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	back, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, r.RunID, back.RunID)
	require.Len(t, back.Plans, 2)

	g := back.Plans[0].Swipes[0].Gesture
	require.NotNil(t, g)
	assert.Equal(t, geometry.Up, g.Direction)
	assert.Equal(t, geometry.Vec(2000, 0), g.End)

	xml, err := os.ReadFile(filepath.Join(dir, JUnitFile))
	require.NoError(t, err)
	assert.Contains(t, string(xml), `<testsuites tests="2" failures="1"`)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(t.TempDir())
	assert.Error(t, err)
}

func TestBuildJUnitXML(t *testing.T) {
	r := New(samplePlans(), 2*time.Second)
	xml := buildJUnitXML(r)

	checks := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`time="2.000"`,
		`<testcase name="Feed" classname="Feed" time="0.003">`,
		`<property name="file" value="feed.yaml"/>`,
		`<property name="swipes" value="1"/>`,
		`<testcase name="Carousel &lt;A&amp;B&gt;"`,
		`<failure message="drag left: &quot;socket&quot; closed" type="SwipeError">second</failure>`,
	}
	for _, c := range checks {
		assert.Contains(t, xml, c)
	}
	assert.Equal(t, 1, strings.Count(xml, "<failure"))
}

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&apos;&amp;&apos;&lt;/a&gt;", xmlEscape(`<a href="x">'&'</a>`))
}
