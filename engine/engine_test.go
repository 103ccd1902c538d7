package engine_test

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rskperm/engine"
	"github.com/katalvlaran/rskperm/random"
	"github.com/katalvlaran/rskperm/rsk"
	"github.com/katalvlaran/rskperm/shape"
)

func TestRun_Pipeline(t *testing.T) {
	p := shape.Partition{4, 3, 1}
	e := engine.New(engine.WithSource(random.NewSeeded(5)))
	res, err := e.Run(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, p, res.Shape)
	assert.Equal(t, engine.ModeShortcut, res.Mode)
	require.NoError(t, res.P.Validate(), "returned P must be intact")
	require.NoError(t, res.Q.Validate(), "returned Q must be intact")
	assert.Equal(t, p, res.P.Shape())
	require.NoError(t, res.Permutation.Validate())
	assert.Equal(t, p.Size(), res.Permutation.Len())

	back, err := res.Matrix.Permutation()
	require.NoError(t, err)
	assert.Equal(t, []int(res.Permutation), back)
	assert.NotEqual(t, uuid.Nil, res.ID)
}

// TestRun_ModesAgreeWithRsk replays the returned pair through each inverse.
func TestRun_ModesAgreeWithRsk(t *testing.T) {
	p := shape.Partition{3, 3, 2}
	for _, mode := range []engine.Mode{engine.ModeShortcut, engine.ModeBumping} {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := engine.New(engine.WithSource(random.NewSeeded(8)), engine.WithMode(mode)).
				Run(context.Background(), p)
			require.NoError(t, err)

			invert := rsk.Inverse
			if mode == engine.ModeBumping {
				invert = rsk.InverseBumping
			}
			want, err := invert(res.P.Clone(), res.Q.Clone())
			require.NoError(t, err)
			assert.Equal(t, want, res.Permutation)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	p := shape.Partition{5, 5, 5}
	a, err := engine.New(engine.WithSource(random.NewSeeded(1))).Run(context.Background(), p)
	require.NoError(t, err)
	b, err := engine.New(engine.WithSource(random.NewSeeded(1))).Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, a.Permutation, b.Permutation)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRun_Parallel(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := shape.Partition{6, 4, 4, 2}
	par, err := engine.New(engine.WithPairSources(random.NewSeeded(10), random.NewSeeded(20))).
		Run(context.Background(), p)
	require.NoError(t, err)
	require.NoError(t, par.Permutation.Validate())

	// P comes only from the first stream, Q only from the second.
	single := engine.New(engine.WithSource(random.NewSeeded(10)))
	P, err := single.SampleTableau(p)
	require.NoError(t, err)
	assert.Equal(t, P.Cells(), par.P.Cells())
}

func TestRun_Errors(t *testing.T) {
	e := engine.New(engine.WithSource(random.NewSeeded(1)))
	_, err := e.Run(context.Background(), shape.Partition{1, 2})
	assert.ErrorIs(t, err, shape.ErrInvalidShape)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Run(ctx, shape.Partition{2})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = engine.New(engine.WithSource(random.NewCrypto(emptyReader{}))).
		Run(context.Background(), shape.Partition{2, 1})
	assert.ErrorIs(t, err, random.ErrEntropyUnavailable)
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, io.EOF }

func TestRun_LogsRunID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	res, err := engine.New(engine.WithSource(random.NewSeeded(2)), engine.WithLogger(zap.New(core))).
		Run(context.Background(), shape.Partition{2, 2})
	require.NoError(t, err)

	entries := logs.FilterMessage("permutation sampled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, res.ID.String(), entries[0].ContextMap()["run_id"])
	assert.Equal(t, int64(4), entries[0].ContextMap()["n"])
	assert.Equal(t, 2, logs.FilterMessage("sampled tableau").Len())
}

func TestParseMode(t *testing.T) {
	m, err := engine.ParseMode("Bumping")
	require.NoError(t, err)
	assert.Equal(t, engine.ModeBumping, m)

	m, err = engine.ParseMode(" shortcut ")
	require.NoError(t, err)
	assert.Equal(t, engine.ModeShortcut, m)

	_, err = engine.ParseMode("bubble")
	assert.ErrorIs(t, err, engine.ErrUnknownMode)
	assert.Equal(t, "Mode(9)", engine.Mode(9).String())
	assert.Panics(t, func() { engine.WithMode(engine.Mode(9)) })
}
