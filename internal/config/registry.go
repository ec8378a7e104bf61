// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 exprun contributors

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expkit/exprun/models"
)

// Registry is an immutable mapping from base-configuration names to
// prototypes. It is built once at startup and never mutated.
type Registry map[string]Prototype

// DefaultRegistry returns the built-in base-configuration library.
//
// Both prototypes leave the seed missing: every run must supply its own
// seed so experiments stay reproducible on purpose, not by accident.
func DefaultRegistry() Registry {
	return Registry{
		"small": {
			Dataset:    ptr(models.DatasetMNIST),
			Optimizer:  models.DefaultSgd(),
			NumLayers:  ptr(4),
			Units:      ptr(64),
			BatchSize:  ptr(2048),
			TrainSteps: ptr(30_000),
		},
		"big": {
			Dataset:    ptr(models.DatasetImageNet50),
			Optimizer:  models.DefaultAdam(),
			NumLayers:  ptr(8),
			Units:      ptr(256),
			BatchSize:  ptr(32),
			TrainSteps: ptr(100_000),
		},
	}
}

// Names returns the sorted set of base-configuration names in r.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// SelectBase looks up name in the registry and returns its prototype.
// An absent name fails with [ErrUnknownBaseName]; the error message
// reports the set of valid names.
func SelectBase(r Registry, name string) (Prototype, error) {
	proto, ok := r[name]
	if !ok {
		return Prototype{}, fmt.Errorf("%w: %q (valid names: %s)",
			ErrUnknownBaseName, name, strings.Join(r.Names(), ", "))
	}

	return proto, nil
}

func ptr[T any](v T) *T {
	return &v
}
