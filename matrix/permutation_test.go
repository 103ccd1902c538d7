package matrix_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rskperm/matrix"
)

// TestFromPermutation marks (i, σ[i]−1) and reads σ back.
func TestFromPermutation(t *testing.T) {
	sigma := []int{2, 4, 1, 3}
	m, err := matrix.FromPermutation(sigma)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	for i, v := range sigma {
		for j := 0; j < 4; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, j == v-1, got, "cell (%d,%d)", i, j)
		}
	}

	back, err := m.Permutation()
	require.NoError(t, err)
	assert.Equal(t, sigma, back)
}

func TestFromPermutation_Errors(t *testing.T) {
	_, err := matrix.FromPermutation(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	for _, bad := range [][]int{{0}, {2}, {1, 1}, {1, 3, 2, 5}} {
		_, err := matrix.FromPermutation(bad)
		assert.ErrorIs(t, err, matrix.ErrInvalidPermutation, "%v", bad)
	}
}

func TestPermutation_Errors(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	_, err := rect.Permutation()
	assert.ErrorIs(t, err, matrix.ErrInvalidPermutation)

	empty, _ := matrix.NewDense(2, 2)
	_, err = empty.Permutation()
	assert.ErrorIs(t, err, matrix.ErrInvalidPermutation)

	double, _ := matrix.NewDense(2, 2)
	require.NoError(t, double.Set(0, 0, true))
	require.NoError(t, double.Set(1, 0, true))
	_, err = double.Permutation()
	assert.ErrorIs(t, err, matrix.ErrInvalidPermutation)
}

func TestRender(t *testing.T) {
	m, err := matrix.FromPermutation([]int{3, 1, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.Render(&buf, m, '●', '·'))
	assert.Equal(t, "··●\n●··\n·●·\n", buf.String())
}
