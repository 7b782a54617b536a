package params_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyJSON_OverridesNamedField(t *testing.T) {
	p := params.Default()
	out, err := p.ApplyJSON(map[string]float64{"dist_max_next": 250})
	require.NoError(t, err)
	assert.Equal(t, 250.0, out.DistMaxNext)
	assert.Equal(t, p.DistMaxStart, out.DistMaxStart, "unrelated fields are untouched")
}

func TestApplyJSON_DoesNotMutateReceiver(t *testing.T) {
	p := params.Default()
	before := p.DistMaxNext
	_, err := p.ApplyJSON(map[string]float64{"dist_max_next": 999})
	require.NoError(t, err)
	assert.Equal(t, before, p.DistMaxNext)
}

func TestApplyJSON_UnknownNameErrors(t *testing.T) {
	p := params.Default()
	_, err := p.ApplyJSON(map[string]float64{"not_a_real_param": 1})
	assert.ErrorIs(t, err, params.ErrUnknownParam)
}

func TestApplyJSONAny_RejectsNonNumeric(t *testing.T) {
	p := params.Default()
	_, err := p.ApplyJSONAny(map[string]interface{}{"dist_max_next": "oops"})
	assert.ErrorIs(t, err, params.ErrNotANumber)
}
