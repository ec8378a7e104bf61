package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// ParseFlags parses all experiment override flags from args.
//
// Flags:
//
//	-dataset dataset name (mnist, imagenet-50)
//	-optimizer-type optimizer case (adam, sgd)
//	-optimizer-learning-rate learning rate of the selected case
//	-optimizer-beta1 first moving-average coefficient (adam)
//	-optimizer-beta2 second moving-average coefficient (adam)
//	-num-layers number of model layers
//	-units units per layer
//	-batch-size training batch size
//	-train-steps total training steps
//	-seed random seed
//	-allow-optimizer-switch permit replacing the base optimizer case
//
// A flag that is not supplied leaves its field nil, so prototype defaults
// shine through. Integer flags reject non-integral input with
// [ErrInvalidNumericValue].
func ParseFlags(args []string) (*Overrides, error) {
	overrides := &Overrides{}

	fs := flag.NewFlagSet("exprun", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&stringValue{&overrides.Dataset}, "dataset", "Dataset name (mnist, imagenet-50)")
	fs.Var(&stringValue{&overrides.Optimizer.Type}, "optimizer-type", "Optimizer case (adam, sgd)")
	fs.Var(&floatValue{&overrides.Optimizer.LearningRate}, "optimizer-learning-rate", "Learning rate")
	fs.Var(&floatValue{&overrides.Optimizer.Beta1}, "optimizer-beta1", "Adam beta1")
	fs.Var(&floatValue{&overrides.Optimizer.Beta2}, "optimizer-beta2", "Adam beta2")
	fs.Var(&intValue{&overrides.NumLayers}, "num-layers", "Number of model layers")
	fs.Var(&intValue{&overrides.Units}, "units", "Units per layer")
	fs.Var(&intValue{&overrides.BatchSize}, "batch-size", "Training batch size")
	fs.Var(&intValue{&overrides.TrainSteps}, "train-steps", "Total training steps")
	fs.Var(&intValue{&overrides.Seed}, "seed", "Random seed")
	fs.BoolVar(&overrides.AllowOptimizerSwitch, "allow-optimizer-switch", false,
		"Permit overrides to replace the base optimizer case")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing override flags: %w", err)
	}

	return overrides, nil
}

// intValue adapts an optional int field to the flag.Value interface.
// The target pointer stays nil until the flag is supplied.
type intValue struct {
	dst **int
}

// String returns the current value, or the empty string when unset.
func (v *intValue) String() string {
	if v.dst == nil || *v.dst == nil {
		return ""
	}

	return strconv.Itoa(**v.dst)
}

// Set parses s as a base-10 integer and stores it in the target field.
// Fractional or otherwise non-integral input fails with
// [ErrInvalidNumericValue].
func (v *intValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrInvalidNumericValue, s)
	}

	*v.dst = &n
	return nil
}

// floatValue adapts an optional float64 field to the flag.Value interface.
type floatValue struct {
	dst **float64
}

func (v *floatValue) String() string {
	if v.dst == nil || *v.dst == nil {
		return ""
	}

	return strconv.FormatFloat(**v.dst, 'g', -1, 64)
}

// Set parses s as a float64 and stores it in the target field.
func (v *floatValue) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidNumericValue, s)
	}

	*v.dst = &f
	return nil
}

// stringValue adapts an optional string field to the flag.Value interface.
type stringValue struct {
	dst **string
}

func (v *stringValue) String() string {
	if v.dst == nil || *v.dst == nil {
		return ""
	}

	return **v.dst
}

func (v *stringValue) Set(s string) error {
	*v.dst = &s
	return nil
}
