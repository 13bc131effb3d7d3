package dataset

import "github.com/TFMV/nowgen/pkg/errors"

// Package-specific error codes for dataset generation
var (
	ErrUnknownScale       = errors.MustNewCode("dataset.unknown_scale")
	ErrInvalidSampleCount = errors.MustNewCode("dataset.invalid_sample_count")
)
