// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 exprun contributors

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Overrides is a partial experiment record: every field is optional and a
// nil pointer means "not supplied". Overrides are collected from the
// command line and from EXP_-prefixed environment variables, then merged
// onto a [Prototype] by the resolver.
//
// Struct tags:
//   - env       — environment variable name, resolved under the EXP_ prefix.
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
type Overrides struct {
	// Dataset overrides the dataset. Validated against the closed set of
	// dataset values during resolution.
	Dataset *string `env:"DATASET"`

	// Optimizer holds overrides for the optimizer variant field.
	Optimizer OptimizerOverrides `envPrefix:"OPTIMIZER_"`

	// NumLayers overrides the number of model layers.
	NumLayers *int `env:"NUM_LAYERS"`

	// Units overrides the number of units per layer.
	Units *int `env:"UNITS"`

	// BatchSize overrides the training batch size.
	BatchSize *int `env:"BATCH_SIZE"`

	// TrainSteps overrides the total number of training steps.
	TrainSteps *int `env:"TRAIN_STEPS"`

	// Seed overrides the random seed.
	Seed *int `env:"SEED"`

	// AllowOptimizerSwitch enables replacing the prototype's optimizer
	// case instead of only adjusting the active case's sub-fields.
	// A resolver mode, not an override value; carried here so it can be
	// set from any override source.
	AllowOptimizerSwitch bool `env:"ALLOW_OPTIMIZER_SWITCH"`
}

// OptimizerOverrides targets the optimizer variant field. Type selects a
// case; the remaining fields override sub-fields of the selected (or
// currently active) case.
type OptimizerOverrides struct {
	// Type names the optimizer case to use ("adam" or "sgd"). Selecting a
	// case different from the prototype's requires AllowOptimizerSwitch.
	Type *string `env:"TYPE"`

	// LearningRate overrides the learning rate of either case.
	LearningRate *float64 `env:"LEARNING_RATE"`

	// Beta1 overrides the first moving-average coefficient (adam only).
	Beta1 *float64 `env:"BETA1"`

	// Beta2 overrides the second moving-average coefficient (adam only).
	Beta2 *float64 `env:"BETA2"`
}

type overridesBuilder struct {
	layers []*Overrides
	err    error
}

func newOverridesBuilder() *overridesBuilder {
	return &overridesBuilder{
		layers: make([]*Overrides, 0, 2),
	}
}

// build merges the collected layers into a single Overrides value.
// Earlier layers take precedence: a field already supplied by a previous
// layer is not overwritten by a later one.
func (b *overridesBuilder) build() (*Overrides, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during collecting overrides: %w", b.err)
	}

	overrides := new(Overrides)
	for _, layer := range b.layers {
		if err := mergo.Merge(overrides, layer); err != nil {
			return nil, fmt.Errorf("error merging override layers: %w", err)
		}
	}

	return overrides, nil
}

func (b *overridesBuilder) withFlags(args []string) *overridesBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flags)
	return b
}

func (b *overridesBuilder) withEnv() *overridesBuilder {
	envOverrides := &Overrides{}
	if err := parseEnvOverrides(envOverrides); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envOverrides)
	return b
}

// GetOverrides collects and merges user-supplied overrides from all
// sources in the following priority order (earlier sources win for
// supplied fields):
//  1. Command-line flags (args, normally os.Args[1:])
//  2. EXP_-prefixed environment variables
//
// Returns the merged partial record or an error if any source fails to
// parse.
func GetOverrides(args []string) (*Overrides, error) {
	return newOverridesBuilder().
		withFlags(args).
		withEnv().
		build()
}
