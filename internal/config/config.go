// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 exprun contributors

package config

import (
	"github.com/expkit/exprun/models"
)

// Prototype is a named base configuration: a partially-or-fully populated
// ExperimentConfig used as the default layer for a run.
//
// A nil field carries no default and must be supplied by an override
// before resolution succeeds. The nil marker is distinct from any
// legitimate field value; a zero seed and a missing seed are different
// states.
type Prototype struct {
	// Dataset is the dataset the experiment runs on.
	Dataset *models.Dataset

	// Optimizer is the active optimizer case. A nil interface means the
	// prototype carries no optimizer default.
	Optimizer models.OptimizerConfig

	// NumLayers is the number of model layers.
	NumLayers *int

	// Units is the number of units per layer.
	Units *int

	// BatchSize is the training batch size.
	BatchSize *int

	// TrainSteps is the total number of training steps.
	TrainSteps *int

	// Seed is the random seed.
	Seed *int
}

// BaseSelection carries the base-configuration name chosen for this run.
// Populated from the BASE_CONFIG environment variable.
type BaseSelection struct {
	// Name is the registry key of the base configuration (e.g. "small").
	Name string `env:"BASE_CONFIG"`
}

// GetBaseSelection reads the base-configuration selection from the
// environment. An unset BASE_CONFIG yields an empty Name, which
// [SelectBase] rejects with the list of valid names.
func GetBaseSelection() (*BaseSelection, error) {
	sel := &BaseSelection{}
	if err := parseEnv(sel); err != nil {
		return nil, err
	}

	return sel, nil
}
