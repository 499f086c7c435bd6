package aamesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStroke(t *testing.T) {
	s := DefaultStroke()
	assert.Equal(t, float32(1), s.Width)
	assert.Equal(t, LineCapButt, s.Cap)
	assert.Equal(t, LineJoinMiter, s.Join)
	assert.False(t, s.IsDashed())
}

func TestStrokeBuilders(t *testing.T) {
	s := DefaultStroke().WithWidth(3).WithCap(LineCapRound).WithJoin(LineJoinBevel)
	assert.Equal(t, float32(3), s.Width)
	assert.Equal(t, LineCapRound, s.Cap)
	assert.Equal(t, LineJoinBevel, s.Join)

	d := s.WithDashPattern(4, 2).WithDashOffset(3)
	require.True(t, d.IsDashed())
	assert.Equal(t, []float32{4, 2}, d.Dash.Array)
	assert.Equal(t, 3, d.Dash.Offset)
	assert.False(t, s.IsDashed(), "builders return copies")

	assert.Nil(t, DefaultStroke().WithDashOffset(2).Dash)
}

func TestStrokeCloneIsDeep(t *testing.T) {
	s := DashedStroke(5, 5)
	c := s.Clone()
	c.Dash.Array[0] = 100
	assert.Equal(t, float32(5), s.Dash.Array[0])
}

func TestStrokePresets(t *testing.T) {
	assert.Equal(t, float32(0.5), Thin().Width)
	assert.Equal(t, float32(3), Thick().Width)
	assert.Equal(t, LineJoinRound, RoundStroke().Join)
	assert.Equal(t, LineCapSquare, SquareStroke().Cap)
}

func TestDash(t *testing.T) {
	assert.Nil(t, NewDash())

	src := []float32{10, 5}
	d := NewDash(src...)
	src[0] = 1
	assert.Equal(t, []float32{10, 5}, d.Array, "lengths are copied")
	assert.Equal(t, float32(15), d.PatternLength())
	assert.NoError(t, d.Validate())

	assert.Equal(t, 1, d.WithOffset(1).Offset)
	assert.Equal(t, []float32{20, 10}, d.Scale(2).Array)
	assert.Same(t, d, d.Scale(0))

	var nilDash *Dash
	assert.Nil(t, nilDash.Clone())
	assert.Zero(t, nilDash.PatternLength())
	assert.ErrorIs(t, nilDash.Validate(), ErrInvalidDashPattern)
}

func TestDashValidate(t *testing.T) {
	tests := []struct {
		name  string
		array []float32
		ok    bool
	}{
		{"even", []float32{4, 2}, true},
		{"odd", []float32{4, 2, 1}, true},
		{"zero", []float32{4, 0}, false},
		{"negative", []float32{-4, 2}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Dash{Array: tt.array}).Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDashPattern)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "round", LineCapRound.String())
	assert.Equal(t, "bevel", LineJoinBevel.String())
	assert.Equal(t, "evenodd", FillRuleEvenOdd.String())
	assert.Equal(t, "unknown", LineCap(9).String())
}
