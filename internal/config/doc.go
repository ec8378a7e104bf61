// Package config provides base-configuration selection and override
// resolution for experiment runs.
//
// A run starts from a named prototype in the base-configuration registry
// (selected via the BASE_CONFIG environment variable) and layers
// user-supplied overrides on top of it. Overrides are collected from
// multiple sources in the following priority order (earlier sources win):
//  1. Command-line flags
//  2. EXP_-prefixed environment variables
//
// Prototype fields without a default are marked missing and must be
// supplied by an override; resolution fails otherwise. The main entry
// points are [SelectBase], [GetOverrides], and [Resolver.Resolve].
package config
