package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseFlags ────────────────────────────────────────────────────────────────

// TestParseFlags_Empty verifies that parsing no arguments leaves every
// override unset.
func TestParseFlags_Empty(t *testing.T) {
	overrides, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &Overrides{}, overrides)
}

// TestParseFlags_AllFlags verifies that every flag lands in its field.
func TestParseFlags_AllFlags(t *testing.T) {
	overrides, err := ParseFlags([]string{
		"-dataset", "imagenet-50",
		"-optimizer-type", "adam",
		"-optimizer-learning-rate", "0.002",
		"-optimizer-beta1", "0.85",
		"-optimizer-beta2", "0.95",
		"-num-layers", "6",
		"-units", "128",
		"-batch-size", "16",
		"-train-steps", "500",
		"-seed", "94720",
		"-allow-optimizer-switch",
	})
	require.NoError(t, err)

	require.NotNil(t, overrides.Dataset)
	assert.Equal(t, "imagenet-50", *overrides.Dataset)
	require.NotNil(t, overrides.Optimizer.Type)
	assert.Equal(t, "adam", *overrides.Optimizer.Type)
	require.NotNil(t, overrides.Optimizer.LearningRate)
	assert.Equal(t, 0.002, *overrides.Optimizer.LearningRate)
	require.NotNil(t, overrides.Optimizer.Beta1)
	assert.Equal(t, 0.85, *overrides.Optimizer.Beta1)
	require.NotNil(t, overrides.Optimizer.Beta2)
	assert.Equal(t, 0.95, *overrides.Optimizer.Beta2)
	require.NotNil(t, overrides.NumLayers)
	assert.Equal(t, 6, *overrides.NumLayers)
	require.NotNil(t, overrides.Units)
	assert.Equal(t, 128, *overrides.Units)
	require.NotNil(t, overrides.BatchSize)
	assert.Equal(t, 16, *overrides.BatchSize)
	require.NotNil(t, overrides.TrainSteps)
	assert.Equal(t, 500, *overrides.TrainSteps)
	require.NotNil(t, overrides.Seed)
	assert.Equal(t, 94720, *overrides.Seed)
	assert.True(t, overrides.AllowOptimizerSwitch)
}

// TestParseFlags_PartialFlags verifies that unsupplied flags stay nil so
// prototype defaults are preserved.
func TestParseFlags_PartialFlags(t *testing.T) {
	overrides, err := ParseFlags([]string{"-seed", "1"})
	require.NoError(t, err)

	require.NotNil(t, overrides.Seed)
	assert.Nil(t, overrides.Dataset)
	assert.Nil(t, overrides.Optimizer.Type)
	assert.Nil(t, overrides.NumLayers)
	assert.False(t, overrides.AllowOptimizerSwitch)
}

// TestParseFlags_NonIntegralInt verifies that integer flags reject
// fractional input.
func TestParseFlags_NonIntegralInt(t *testing.T) {
	_, err := ParseFlags([]string{"-num-layers", "4.5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
}

// TestParseFlags_UnknownFlag verifies that an unknown flag is reported.
func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-momentum", "0.9"})
	assert.Error(t, err)
}

// ── flag.Value implementations ────────────────────────────────────────────────

// TestIntValue_Set verifies integer parsing and the sentinel error on
// non-integral input.
func TestIntValue_Set(t *testing.T) {
	var dst *int
	v := intValue{&dst}

	require.NoError(t, v.Set("42"))
	require.NotNil(t, dst)
	assert.Equal(t, 42, *dst)
	assert.Equal(t, "42", v.String())

	err := v.Set("4.5")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumericValue)
}

// TestFloatValue_Set verifies float parsing and the sentinel error on
// non-numeric input.
func TestFloatValue_Set(t *testing.T) {
	var dst *float64
	v := floatValue{&dst}

	require.NoError(t, v.Set("3e-4"))
	require.NotNil(t, dst)
	assert.Equal(t, 3e-4, *dst)

	err := v.Set("fast")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumericValue)
}

// TestStringValue_Set verifies that string values are captured as-is.
func TestStringValue_Set(t *testing.T) {
	var dst *string
	v := stringValue{&dst}

	require.NoError(t, v.Set("mnist"))
	require.NotNil(t, dst)
	assert.Equal(t, "mnist", *dst)
	assert.Equal(t, "mnist", v.String())
}

// TestValues_String_Unset verifies that unset values render as empty
// strings for flag defaults.
func TestValues_String_Unset(t *testing.T) {
	var i *int
	var f *float64
	var s *string

	assert.Empty(t, (&intValue{&i}).String())
	assert.Empty(t, (&floatValue{&f}).String())
	assert.Empty(t, (&stringValue{&s}).String())
}
