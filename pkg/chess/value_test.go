package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueStringCentipawns(t *testing.T) {
	assert.Equal(t, "cp 123", Value(123).String())
	assert.Equal(t, "cp -45", Value(-45).String())
}

func TestValueStringMate(t *testing.T) {
	// mated at the root: MatedIn(0) == -(MateEval)
	v := MatedIn(0)
	assert.True(t, v.IsMate())
	assert.Equal(t, "mate -0", v.String())

	v2 := MateIn(1)
	assert.True(t, v2.IsMate())
	assert.Equal(t, "mate 1", v2.String())
}

func TestValueNotMateBelowThreshold(t *testing.T) {
	assert.False(t, Value(900).IsMate())
	assert.False(t, MateThreshold.IsMate())
	assert.True(t, (MateThreshold + 1).IsMate())
}
