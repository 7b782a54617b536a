package scoring_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/scenario"
	"github.com/katalvlaran/swipematch/scoring"
	"github.com/stretchr/testify/require"
)

func TestSheet_EmptyFails(t *testing.T) {
	s := scoring.NewSheet(params.Default())
	_, err := s.Finalize(0, 0)
	require.ErrorIs(t, err, scoring.ErrEmptySheet)
}

func TestSheet_PerfectRowsScoreHigherThanNoisyRows(t *testing.T) {
	p := params.Default()

	good := scoring.NewSheet(p)
	good.AddRow('h', scenario.ScoreSet{Distance: 1, Cos: 1})
	good.AddRow('i', scenario.ScoreSet{Distance: 1, Cos: 1})
	goodScore, err := good.Finalize(0, 2)
	require.NoError(t, err)

	noisy := scoring.NewSheet(p)
	noisy.AddRow('h', scenario.ScoreSet{Distance: 0.1, Cos: 0.1})
	noisy.AddRow('i', scenario.ScoreSet{Distance: -0.5, Cos: 0.2})
	noisyScore, err := noisy.Finalize(1, 2)
	require.NoError(t, err)

	require.Greater(t, goodScore, noisyScore)
}

func TestSheet_DebugWriterEmitsOneLinePerRow(t *testing.T) {
	p := params.Default()
	var buf bytes.Buffer
	s := scoring.NewSheet(p)
	s.SetDebugWriter(&buf)
	s.AddRow('h', scenario.ScoreSet{Distance: 1})
	s.AddRow('i', scenario.ScoreSet{Distance: 0.8})
	_, err := s.Finalize(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
