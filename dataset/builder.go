package dataset

import (
	"math/rand/v2"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Build materializes the full cross-product table for the spec as a single
// Arrow record. Enumeration order is deterministic: nowcast date outermost,
// then horizon, location, lineage, and sample index innermost.
//
// Values are drawn from an unseeded standard-normal generator, so two runs
// never produce the same value column.
func Build(spec Spec) (arrow.Record, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	mem := memory.NewGoAllocator()
	rows := spec.Rows()

	nowcastB := array.NewDate32Builder(mem)
	defer nowcastB.Release()
	horizonB := array.NewInt64Builder(mem)
	defer horizonB.Release()
	locationB := array.NewStringBuilder(mem)
	defer locationB.Release()
	lineageB := array.NewStringBuilder(mem)
	defer lineageB.Release()
	outputTypeB := array.NewStringBuilder(mem)
	defer outputTypeB.Release()
	outputTypeIDB := array.NewInt64Builder(mem)
	defer outputTypeIDB.Release()
	targetB := array.NewDate32Builder(mem)
	defer targetB.Release()
	valueB := array.NewFloat64Builder(mem)
	defer valueB.Release()

	nowcastB.Reserve(rows)
	horizonB.Reserve(rows)
	locationB.Reserve(rows)
	lineageB.Reserve(rows)
	outputTypeB.Reserve(rows)
	outputTypeIDB.Reserve(rows)
	targetB.Reserve(rows)
	valueB.Reserve(rows)

	// Render the categorical labels once, not once per row
	locations := make([]string, NumLocations)
	for i := range locations {
		locations[i] = strconv.Itoa(i)
	}
	lineages := make([]string, NumLineages)
	for i := range lineages {
		lineages[i] = strconv.Itoa(i)
	}

	nowcast := arrow.Date32FromTime(NowcastDate)

	for _, horizon := range spec.Scale.Horizons() {
		target := arrow.Date32FromTime(spec.Scale.TargetDate(NowcastDate, horizon))
		for _, location := range locations {
			for _, lineage := range lineages {
				for sample := 0; sample < spec.Samples; sample++ {
					nowcastB.Append(nowcast)
					horizonB.Append(int64(horizon))
					locationB.Append(location)
					lineageB.Append(lineage)
					outputTypeB.Append(OutputType)
					outputTypeIDB.Append(int64(sample))
					targetB.Append(target)
					valueB.Append(rand.NormFloat64())
				}
			}
		}
	}

	cols := []arrow.Array{
		nowcastB.NewArray(),
		horizonB.NewArray(),
		locationB.NewArray(),
		lineageB.NewArray(),
		outputTypeB.NewArray(),
		outputTypeIDB.NewArray(),
		targetB.NewArray(),
		valueB.NewArray(),
	}

	record := array.NewRecord(Schema(), cols, int64(rows))
	for _, col := range cols {
		col.Release()
	}

	return record, nil
}
