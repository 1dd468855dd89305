package mult

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/bilinear/group"
)

func randomVectors(t *testing.T, g group.Group, n int) ([]group.Point, []group.Scalar) {
	t.Helper()
	points := make([]group.Point, n)
	scalars := make([]group.Scalar, n)
	for i := 0; i < n; i++ {
		points[i] = randomPoint(t, g)
		scalars[i] = randomScalar(t, g)
	}
	return points, scalars
}

func TestMultiScalarMulStrategiesAgree(t *testing.T) {
	bothGroups(t, func(t *testing.T, g group.Group) {
		points, scalars := randomVectors(t, g, 20)

		naive, err := MultiScalarMulNaive(g, points, scalars)
		require.NoError(t, err)

		strauss, err := MultiScalarMulVarTime(g, points, scalars)
		require.NoError(t, err)
		require.True(t, naive.Equal(strauss), "Strauss result diverges from naive")

		windowed, err := MultiScalarMulConstTime(g, points, scalars)
		require.NoError(t, err)
		require.True(t, naive.Equal(windowed), "fixed-window result diverges from naive")
	})
}

func TestMultiScalarMulWithPrecomputation(t *testing.T) {
	bothGroups(t, func(t *testing.T, g group.Group) {
		points, scalars := randomVectors(t, g, 8)

		naive, err := MultiScalarMulNaive(g, points, scalars)
		require.NoError(t, err)

		tables := make([]*LookupTable, len(points))
		for i, p := range points {
			tables[i] = NewLookupTable(g, p)
		}
		strauss, err := MultiScalarMulVarTimeWithTables(g, tables, scalars)
		require.NoError(t, err)
		require.True(t, naive.Equal(strauss))

		// Reuse the same tables with fresh scalars, the amortization the
		// entry point exists for.
		_, scalars2 := randomVectors(t, g, 8)
		naive2, err := MultiScalarMulNaive(g, points, scalars2)
		require.NoError(t, err)
		strauss2, err := MultiScalarMulVarTimeWithTables(g, tables, scalars2)
		require.NoError(t, err)
		require.True(t, naive2.Equal(strauss2))

		multiples := make([][]group.Point, len(points))
		for i, p := range points {
			multiples[i] = Multiples(g, p, 7)
		}
		windowed, err := MultiScalarMulConstTimeWithMultiples(g, multiples, scalars)
		require.NoError(t, err)
		require.True(t, naive.Equal(windowed))
	})
}

func TestMultiScalarMulSizeMismatch(t *testing.T) {
	g := firstGroup()
	points, scalars := randomVectors(t, g, 3)
	short := scalars[:2]

	for name, call := range map[string]func() (group.Point, error){
		"Naive":     func() (group.Point, error) { return MultiScalarMulNaive(g, points, short) },
		"VarTime":   func() (group.Point, error) { return MultiScalarMulVarTime(g, points, short) },
		"ConstTime": func() (group.Point, error) { return MultiScalarMulConstTime(g, points, short) },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := call()
			require.ErrorIs(t, err, ErrSizeMismatch)
		})
	}
}

func TestMultiScalarMulEmpty(t *testing.T) {
	bothGroups(t, func(t *testing.T, g group.Group) {
		for _, call := range []func() (group.Point, error){
			func() (group.Point, error) { return MultiScalarMulNaive(g, nil, nil) },
			func() (group.Point, error) { return MultiScalarMulVarTime(g, nil, nil) },
			func() (group.Point, error) { return MultiScalarMulConstTime(g, nil, nil) },
		} {
			res, err := call()
			require.NoError(t, err)
			require.True(t, res.IsIdentity(), "empty inner product should be the identity")
		}
	})
}

func TestMultiScalarMulZeroScalars(t *testing.T) {
	g := firstGroup()
	points, _ := randomVectors(t, g, 4)
	zeros := make([]group.Scalar, 4)
	for i := range zeros {
		zeros[i] = g.NewScalar()
	}

	for _, call := range []func() (group.Point, error){
		func() (group.Point, error) { return MultiScalarMulNaive(g, points, zeros) },
		func() (group.Point, error) { return MultiScalarMulVarTime(g, points, zeros) },
		func() (group.Point, error) { return MultiScalarMulConstTime(g, points, zeros) },
	} {
		res, err := call()
		require.NoError(t, err)
		require.True(t, res.IsIdentity())
	}
}

func TestErrSizeMismatchCarriesLengths(t *testing.T) {
	g := firstGroup()
	points, scalars := randomVectors(t, g, 3)

	_, err := MultiScalarMulNaive(g, points, scalars[:2])
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSizeMismatch))
	require.Contains(t, err.Error(), "3")
	require.Contains(t, err.Error(), "2")
}
