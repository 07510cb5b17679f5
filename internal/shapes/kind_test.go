package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/shape-arcade/internal/core"
)

func TestParseKindIgnoresCase(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"Rectangle", Rectangle},
		{"CIRCLE", Circle},
		{"triangle", Triangle},
		{"  TrApEzOiD ", Trapezoid},
		{"pentagon", Pentagon},
		{"HEXAGON", Hexagon},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("Square")
	assert.ErrorContains(t, err, "Square")
}

func TestKindMetadataIsDistinct(t *testing.T) {
	keys := map[rune]Kind{}
	for _, k := range All() {
		assert.True(t, k.Valid())
		other, dup := keys[k.Key()]
		require.False(t, dup, "%s and %s share key %q", k, other, k.Key())
		keys[k.Key()] = k
	}
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.False(t, Kind(-1).Valid())
}

func TestFromAction(t *testing.T) {
	k, ok := FromAction(core.ActionGuessTrapezoid)
	require.True(t, ok)
	assert.Equal(t, Trapezoid, k)

	_, ok = FromAction(core.ActionFire)
	assert.False(t, ok)
}

func TestKindYAML(t *testing.T) {
	var doc struct {
		Pool []Kind `yaml:"pool"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("pool: [circle, Hexagon]"), &doc))
	assert.Equal(t, []Kind{Circle, Hexagon}, doc.Pool)

	err := yaml.Unmarshal([]byte("pool: [square]"), &doc)
	assert.Error(t, err)
}

type scripted struct {
	floats []float64
	ints   []int
}

func (s *scripted) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func TestPick(t *testing.T) {
	src := &scripted{ints: []int{2, 0}}
	pool := []Kind{Trapezoid, Pentagon, Hexagon}

	assert.Equal(t, Hexagon, Pick(src, pool))
	assert.Equal(t, Trapezoid, Pick(src, pool))
}
