package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkweave/hyreach/numeric"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 1.0, numeric.Min(1.0, 2.0))
	assert.Equal(t, 1.0, numeric.Min(2.0, 1.0))
	assert.Equal(t, -3, numeric.Min(-3, 5))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 2.0, numeric.Max(1.0, 2.0))
	assert.Equal(t, 2.0, numeric.Max(2.0, 1.0))
	assert.Equal(t, 5, numeric.Max(-3, 5))
}
