// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 exprun contributors

package models

import (
	"gopkg.in/yaml.v3"
)

// Dataset identifies which dataset an experiment trains on.
// Only the values enumerated below are accepted.
type Dataset string

const (
	// DatasetMNIST selects the MNIST handwritten-digit dataset.
	DatasetMNIST Dataset = "mnist"

	// DatasetImageNet50 selects the 50-class ImageNet subset.
	DatasetImageNet50 Dataset = "imagenet-50"
)

// DatasetValues returns the closed set of accepted dataset values.
func DatasetValues() []Dataset {
	return []Dataset{DatasetMNIST, DatasetImageNet50}
}

// Valid reports whether d is one of the accepted dataset values.
func (d Dataset) Valid() bool {
	for _, v := range DatasetValues() {
		if d == v {
			return true
		}
	}

	return false
}

// ExperimentConfig is a fully resolved experiment configuration.
// Every field holds a concrete value; a config is constructed once by the
// resolver and never mutated afterwards.
type ExperimentConfig struct {
	// Dataset is the dataset the experiment runs on.
	Dataset Dataset `json:"dataset" yaml:"dataset"`

	// Optimizer holds the active optimizer case and its parameters.
	Optimizer OptimizerConfig `json:"optimizer" yaml:"optimizer"`

	// NumLayers is the number of model layers.
	NumLayers int `json:"num_layers" yaml:"num_layers"`

	// Units is the number of units per layer.
	Units int `json:"units" yaml:"units"`

	// BatchSize is the training batch size.
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// TrainSteps is the total number of training steps.
	TrainSteps int `json:"train_steps" yaml:"train_steps"`

	// Seed is the random seed used to make runs reproducible.
	Seed int `json:"seed" yaml:"seed"`
}

// YAML renders the resolved configuration as a YAML document suitable for
// printing to the user.
func (c *ExperimentConfig) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
