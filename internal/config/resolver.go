// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 exprun contributors

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expkit/exprun/models"
)

// Resolver merges user-supplied overrides onto a base-configuration
// prototype and validates the result. Resolution is a single pure
// function: it either yields a fully concrete config or fails.
type Resolver struct {
	// AllowVariantSwitch permits overrides to select an optimizer case
	// different from the prototype's. When false, only sub-fields of the
	// currently active case may be overridden; attempting to switch fails
	// with [ErrVariantSwitchDisabled].
	AllowVariantSwitch bool
}

// Resolve merges overrides onto proto field by field: a supplied override
// wins, otherwise the prototype's value is used. After merging, every
// field must hold a concrete value; fields still missing are collected
// and reported together via [ErrMissingRequiredField].
func (r Resolver) Resolve(proto Prototype, overrides *Overrides) (*models.ExperimentConfig, error) {
	if overrides == nil {
		overrides = &Overrides{}
	}

	var missing []string

	dataset, err := r.resolveDataset(proto, overrides)
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		missing = append(missing, "dataset")
	}

	optimizer, err := r.resolveOptimizer(proto, overrides)
	if err != nil {
		return nil, err
	}
	if optimizer == nil {
		missing = append(missing, "optimizer")
	}

	numLayers := resolveInt(proto.NumLayers, overrides.NumLayers, "num_layers", &missing)
	units := resolveInt(proto.Units, overrides.Units, "units", &missing)
	batchSize := resolveInt(proto.BatchSize, overrides.BatchSize, "batch_size", &missing)
	trainSteps := resolveInt(proto.TrainSteps, overrides.TrainSteps, "train_steps", &missing)
	seed := resolveInt(proto.Seed, overrides.Seed, "seed", &missing)

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
	}

	return &models.ExperimentConfig{
		Dataset:    *dataset,
		Optimizer:  optimizer,
		NumLayers:  numLayers,
		Units:      units,
		BatchSize:  batchSize,
		TrainSteps: trainSteps,
		Seed:       seed,
	}, nil
}

// resolveDataset validates a dataset override against the closed value set
// and falls back to the prototype when none is supplied. A nil result
// means the field is still missing.
func (r Resolver) resolveDataset(proto Prototype, overrides *Overrides) (*models.Dataset, error) {
	if overrides.Dataset == nil {
		return proto.Dataset, nil
	}

	dataset := models.Dataset(*overrides.Dataset)
	if !dataset.Valid() {
		return nil, fmt.Errorf("%w: dataset %q (accepted: %s)",
			ErrInvalidEnumValue, *overrides.Dataset, joinDatasets())
	}

	return &dataset, nil
}

// resolveOptimizer resolves the variant field. An override may replace the
// case entirely (when switching is allowed) or adjust sub-fields of the
// active case. A nil result with nil error means the field is still
// missing.
func (r Resolver) resolveOptimizer(proto Prototype, overrides *Overrides) (models.OptimizerConfig, error) {
	opt := overrides.Optimizer
	base := proto.Optimizer

	if opt.Type != nil {
		kind, ok := models.ParseOptimizerKind(*opt.Type)
		if !ok {
			return nil, fmt.Errorf("%w: optimizer type %q (accepted: %s)",
				ErrInvalidEnumValue, *opt.Type, joinOptimizerKinds())
		}

		switch {
		case base == nil:
			// No base case to preserve; the override selects one freely.
			base = models.DefaultOptimizer(kind)
		case kind != base.Kind():
			if !r.AllowVariantSwitch {
				return nil, fmt.Errorf("%w: base optimizer is %s, requested %s",
					ErrVariantSwitchDisabled, base.Kind(), kind)
			}
			// Replace tag and payload atomically; sub-field overrides
			// below apply to the fresh case.
			base = models.DefaultOptimizer(kind)
		}
	}

	if base == nil {
		return nil, nil
	}

	switch active := base.(type) {
	case models.AdamOptimizer:
		if opt.LearningRate != nil {
			active.LearningRate = *opt.LearningRate
		}
		if opt.Beta1 != nil {
			active.Beta1 = *opt.Beta1
		}
		if opt.Beta2 != nil {
			active.Beta2 = *opt.Beta2
		}
		return active, nil
	case models.SgdOptimizer:
		if opt.Beta1 != nil || opt.Beta2 != nil {
			return nil, fmt.Errorf("%w: beta parameters apply to the adam case only; set -optimizer-type to switch",
				ErrVariantSwitchDisabled)
		}
		if opt.LearningRate != nil {
			active.LearningRate = *opt.LearningRate
		}
		return active, nil
	}

	return nil, fmt.Errorf("%w: optimizer type %q", ErrInvalidEnumValue, base.Kind())
}

// resolveInt merges one optional int field, recording field in missing
// when neither the prototype nor the overrides supply a value.
func resolveInt(base, override *int, field string, missing *[]string) int {
	value := base
	if override != nil {
		value = override
	}

	if value == nil {
		*missing = append(*missing, field)
		return 0
	}

	return *value
}

func joinDatasets() string {
	values := models.DatasetValues()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}

	return strings.Join(names, ", ")
}

func joinOptimizerKinds() string {
	values := models.OptimizerKindValues()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}

	return strings.Join(names, ", ")
}
