package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── optimizer kinds ───────────────────────────────────────────────────────────

// TestParseOptimizerKind_KnownKinds verifies that every enumerated kind
// parses back to itself.
func TestParseOptimizerKind_KnownKinds(t *testing.T) {
	for _, want := range OptimizerKindValues() {
		kind, ok := ParseOptimizerKind(string(want))
		assert.True(t, ok, "expected %q to parse", want)
		assert.Equal(t, want, kind)
	}
}

// TestParseOptimizerKind_UnknownKind verifies that an unknown kind is
// rejected.
func TestParseOptimizerKind_UnknownKind(t *testing.T) {
	_, ok := ParseOptimizerKind("rmsprop")
	assert.False(t, ok)
}

// TestOptimizerKindValues_Closed verifies the closed set of cases.
func TestOptimizerKindValues_Closed(t *testing.T) {
	assert.Equal(t, []OptimizerKind{OptimizerAdam, OptimizerSgd}, OptimizerKindValues())
}

// ── defaults ──────────────────────────────────────────────────────────────────

// TestDefaultAdam_StockParameters verifies the stock Adam parameters.
func TestDefaultAdam_StockParameters(t *testing.T) {
	adam := DefaultAdam()
	assert.Equal(t, 1e-3, adam.LearningRate)
	assert.Equal(t, 0.9, adam.Beta1)
	assert.Equal(t, 0.999, adam.Beta2)
}

// TestDefaultSgd_StockParameters verifies the stock SGD parameters.
func TestDefaultSgd_StockParameters(t *testing.T) {
	sgd := DefaultSgd()
	assert.Equal(t, 3e-4, sgd.LearningRate)
}

// TestDefaultOptimizer_ReturnsMatchingCase verifies that DefaultOptimizer
// returns the case matching the requested kind.
func TestDefaultOptimizer_ReturnsMatchingCase(t *testing.T) {
	assert.Equal(t, DefaultAdam(), DefaultOptimizer(OptimizerAdam))
	assert.Equal(t, DefaultSgd(), DefaultOptimizer(OptimizerSgd))
}

// ── case tags ─────────────────────────────────────────────────────────────────

// TestKind_PerCase verifies that each case reports its own tag.
func TestKind_PerCase(t *testing.T) {
	assert.Equal(t, OptimizerAdam, AdamOptimizer{}.Kind())
	assert.Equal(t, OptimizerSgd, SgdOptimizer{}.Kind())
}

// ── serialization ─────────────────────────────────────────────────────────────

// TestMarshalJSON_Adam verifies that the Adam case serializes with an
// explicit type tag and all parameters.
func TestMarshalJSON_Adam(t *testing.T) {
	data, err := json.Marshal(AdamOptimizer{LearningRate: 1e-3, Beta1: 0.9, Beta2: 0.999})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "adam", entry["type"])
	assert.Equal(t, 1e-3, entry["learning_rate"])
	assert.Equal(t, 0.9, entry["beta1"])
	assert.Equal(t, 0.999, entry["beta2"])
}

// TestMarshalJSON_Sgd verifies that the SGD case serializes with an
// explicit type tag.
func TestMarshalJSON_Sgd(t *testing.T) {
	data, err := json.Marshal(SgdOptimizer{LearningRate: 3e-4})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "sgd", entry["type"])
	assert.Equal(t, 3e-4, entry["learning_rate"])
}
