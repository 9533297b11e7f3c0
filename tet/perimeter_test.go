package tet_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetfall/tet"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// polygonArea returns the shoelace area of a closed polygon.
func polygonArea(p tet.Perimeter) int {
	sum := 0
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func TestPerimeterForEveryCatalogShape(t *testing.T) {
	for _, typ := range allTypes {
		for rotation := range tet.Rotations(typ) {
			shape := tet.ShapeFor(typ, rotation)
			t.Run(fmt.Sprintf("%s/%d", typ, rotation), func(t *testing.T) {
				p := tet.PerimeterFor(shape)
				require.NotEmpty(t, p, "shape %s", shape)
				assert.Equal(t, shape.Blocks(), polygonArea(p))

				for i := range p {
					a, b := p[i], p[(i+1)%len(p)]
					assert.True(t, a.X == b.X || a.Y == b.Y, "edge %v-%v is not axis aligned", a, b)
				}
			})
		}
	}
}

func TestPerimeterForIgnoresColor(t *testing.T) {
	red := tet.PerimeterFor(tet.Shape{{7, 7}, {0, 7, 7}})
	blue := tet.PerimeterFor(tet.Shape{{2, 2}, {0, 2, 2}})
	assert.Equal(t, red, blue)
	assert.NotEmpty(t, red)
}

func TestPerimeterForSubFragments(t *testing.T) {
	tests := []struct {
		name  string
		shape tet.Shape
		area  int
	}{
		{"single", tet.Shape{{3}}, 1},
		{"domino flat", tet.Shape{{5, 5}}, 2},
		{"domino upright", tet.Shape{{5}, {5}}, 2},
		{"triple flat", tet.Shape{{1, 1, 1}}, 3},
		{"triple upright", tet.Shape{{1}, {1}, {1}}, 3},
		{"corner top right", tet.Shape{{6, 6}, {0, 6}}, 3},
		{"corner bottom right", tet.Shape{{0, 6}, {6, 6}}, 3},
		{"corner bottom left", tet.Shape{{6}, {6, 6}}, 3},
		{"corner top left", tet.Shape{{6, 6}, {6}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tet.PerimeterFor(tt.shape)
			require.NotEmpty(t, p)
			assert.Equal(t, tt.area, polygonArea(p))
		})
	}
}

func TestPerimeterForMissIsEmptyAndLogged(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	tests := []struct {
		name  string
		shape tet.Shape
	}{
		{"padded row", tet.Shape{{1, 0}, {1, 1}}},
		{"five blocks", tet.Shape{{1, 1, 1, 1, 1}}},
		{"six blocks", tet.Shape{{2, 2, 2, 2}, {2}, {2}}},
		{"empty", tet.Shape{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()
			assert.Empty(t, tet.PerimeterFor(tt.shape))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, log.WarnLevel, entry.Level)
			assert.Equal(t, "no perimeter for shape", entry.Message)
		})
	}
}

func TestPerimeterForTrimmedFragment(t *testing.T) {
	padded := tet.Shape{{1, 0}, {1, 1}}
	assert.NotEmpty(t, tet.PerimeterFor(padded.Trim()))
}

func TestPerimeterForReturnsCopy(t *testing.T) {
	p := tet.PerimeterFor(tet.Shape{{4, 4}, {4, 4}})
	p[0] = tet.Point{X: 9, Y: 9}
	again := tet.PerimeterFor(tet.Shape{{4, 4}, {4, 4}})
	assert.Equal(t, tet.Point{X: 0, Y: 0}, again[0])
}
