// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 exprun contributors

package models

import "encoding/json"

// OptimizerKind identifies which optimizer case is active.
type OptimizerKind string

const (
	// OptimizerAdam selects the Adam optimizer case.
	OptimizerAdam OptimizerKind = "adam"

	// OptimizerSgd selects the plain SGD optimizer case.
	OptimizerSgd OptimizerKind = "sgd"
)

// OptimizerKindValues returns the closed set of accepted optimizer kinds.
func OptimizerKindValues() []OptimizerKind {
	return []OptimizerKind{OptimizerAdam, OptimizerSgd}
}

// ParseOptimizerKind converts s into an OptimizerKind.
// The second return value reports whether s names a known kind.
func ParseOptimizerKind(s string) (OptimizerKind, bool) {
	kind := OptimizerKind(s)
	for _, v := range OptimizerKindValues() {
		if kind == v {
			return kind, true
		}
	}

	return "", false
}

// OptimizerConfig is the closed variant of supported optimizer
// configurations. Exactly one case is active per experiment.
// The set of cases is sealed: only AdamOptimizer and SgdOptimizer
// implement it.
type OptimizerConfig interface {
	// Kind returns the case tag of the active optimizer.
	Kind() OptimizerKind

	isOptimizerConfig()
}

// AdamOptimizer holds parameters for the Adam optimizer case.
type AdamOptimizer struct {
	// LearningRate is the Adam learning rate.
	LearningRate float64

	// Beta1 is the first moving-average coefficient.
	Beta1 float64

	// Beta2 is the second moving-average coefficient.
	Beta2 float64
}

// SgdOptimizer holds parameters for the SGD optimizer case.
type SgdOptimizer struct {
	// LearningRate is the SGD learning rate.
	LearningRate float64
}

// DefaultAdam returns the Adam case populated with its stock parameters.
func DefaultAdam() AdamOptimizer {
	return AdamOptimizer{LearningRate: 1e-3, Beta1: 0.9, Beta2: 0.999}
}

// DefaultSgd returns the SGD case populated with its stock parameters.
func DefaultSgd() SgdOptimizer {
	return SgdOptimizer{LearningRate: 3e-4}
}

// DefaultOptimizer returns the default configuration for the given case.
// It panics on an unknown kind; callers validate kinds via
// ParseOptimizerKind first.
func DefaultOptimizer(kind OptimizerKind) OptimizerConfig {
	switch kind {
	case OptimizerAdam:
		return DefaultAdam()
	case OptimizerSgd:
		return DefaultSgd()
	}

	panic("models: unknown optimizer kind " + string(kind))
}

// Kind returns OptimizerAdam.
func (AdamOptimizer) Kind() OptimizerKind { return OptimizerAdam }

func (AdamOptimizer) isOptimizerConfig() {}

// Kind returns OptimizerSgd.
func (SgdOptimizer) Kind() OptimizerKind { return OptimizerSgd }

func (SgdOptimizer) isOptimizerConfig() {}

// adamWire is the serialized shape of the Adam case, carrying an explicit
// type tag so the active case survives round trips through logs and output.
type adamWire struct {
	Type         string  `json:"type" yaml:"type"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
	Beta1        float64 `json:"beta1" yaml:"beta1"`
	Beta2        float64 `json:"beta2" yaml:"beta2"`
}

type sgdWire struct {
	Type         string  `json:"type" yaml:"type"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
}

// MarshalYAML renders the Adam case with its type tag.
func (o AdamOptimizer) MarshalYAML() (any, error) {
	return adamWire{
		Type:         string(OptimizerAdam),
		LearningRate: o.LearningRate,
		Beta1:        o.Beta1,
		Beta2:        o.Beta2,
	}, nil
}

// MarshalJSON renders the Adam case with its type tag.
func (o AdamOptimizer) MarshalJSON() ([]byte, error) {
	return json.Marshal(adamWire{
		Type:         string(OptimizerAdam),
		LearningRate: o.LearningRate,
		Beta1:        o.Beta1,
		Beta2:        o.Beta2,
	})
}

// MarshalYAML renders the SGD case with its type tag.
func (o SgdOptimizer) MarshalYAML() (any, error) {
	return sgdWire{
		Type:         string(OptimizerSgd),
		LearningRate: o.LearningRate,
	}, nil
}

// MarshalJSON renders the SGD case with its type tag.
func (o SgdOptimizer) MarshalJSON() ([]byte, error) {
	return json.Marshal(sgdWire{
		Type:         string(OptimizerSgd),
		LearningRate: o.LearningRate,
	})
}
