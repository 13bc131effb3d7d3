// Package dataset builds synthetic nowcast sample tables as Arrow records.
//
// A table is the cross-product of a fixed nowcast date, a horizon range
// determined by the temporal scale, 50 locations, 30 lineages, the constant
// output type "sample", and a sample index range, with a derived target date
// and a standard-normal value per row.
package dataset

import (
	"time"

	"github.com/TFMV/nowgen/pkg/errors"
	"github.com/apache/arrow-go/v18/arrow"
)

// Scale selects the temporal unit used for horizons and target dates.
type Scale string

const (
	ScaleDay  Scale = "day"
	ScaleWeek Scale = "week"
)

// Cardinalities of the categorical dimensions
const (
	NumLocations = 50
	NumLineages  = 30

	// OutputType is the constant label attached to every generated row
	OutputType = "sample"
)

// NowcastDate is the fixed reference date all horizons are computed from.
var NowcastDate = time.Date(2024, time.January, 26, 0, 0, 0, 0, time.UTC)

// ParseScale parses a temporal scale from its config/CLI spelling.
// The single-letter forms match the pandas frequency aliases.
func ParseScale(s string) (Scale, error) {
	switch s {
	case "day", "d":
		return ScaleDay, nil
	case "week", "w":
		return ScaleWeek, nil
	default:
		return "", errors.Newf(ErrUnknownScale, "unknown temporal scale %q (want \"day\" or \"week\")", s)
	}
}

// Horizons returns the inclusive horizon range for the scale, in order.
func (s Scale) Horizons() []int {
	var lo, hi int
	switch s {
	case ScaleDay:
		lo, hi = -27, 7
	case ScaleWeek:
		lo, hi = -4, 1
	default:
		return nil
	}

	horizons := make([]int, 0, hi-lo+1)
	for h := lo; h <= hi; h++ {
		horizons = append(horizons, h)
	}
	return horizons
}

// TargetDate shifts the nowcast date by horizon units of the scale.
func (s Scale) TargetDate(nowcast time.Time, horizon int) time.Time {
	if s == ScaleWeek {
		return nowcast.AddDate(0, 0, 7*horizon)
	}
	return nowcast.AddDate(0, 0, horizon)
}

// Spec describes one table to generate.
type Spec struct {
	Scale   Scale
	Samples int
}

// Validate checks the spec before any rows are materialized.
func (sp Spec) Validate() error {
	if sp.Scale != ScaleDay && sp.Scale != ScaleWeek {
		return errors.Newf(ErrUnknownScale, "unknown temporal scale %q", string(sp.Scale))
	}
	if sp.Samples <= 0 {
		return errors.Newf(ErrInvalidSampleCount, "sample count must be positive, got %d", sp.Samples)
	}
	return nil
}

// Rows returns the row count the cross-product will produce.
func (sp Spec) Rows() int {
	return len(sp.Scale.Horizons()) * NumLocations * NumLineages * sp.Samples
}

// Schema returns the 8-column Arrow schema shared by all generated tables.
func Schema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "nowcast_date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "horizon", Type: arrow.PrimitiveTypes.Int64},
		{Name: "location", Type: arrow.BinaryTypes.String},
		{Name: "lineage", Type: arrow.BinaryTypes.String},
		{Name: "output_type", Type: arrow.BinaryTypes.String},
		{Name: "output_type_id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "target_date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "value", Type: arrow.PrimitiveTypes.Float64},
	}, nil)
}
