package parquet

import (
	"context"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/go-faster/errors"
)

// FileInfo describes a Parquet file on disk
type FileInfo struct {
	Path    string
	Size    int64
	Rows    int64
	Columns int
	Schema  *arrow.Schema
}

// ReadTable materializes an entire Parquet file as an Arrow table.
// The caller owns the returned table and must Release it.
func ReadTable(ctx context.Context, path string) (arrow.Table, error) {
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, errors.Wrap(err, "open parquet file")
	}
	defer rdr.Close()

	arrowRdr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, errors.Wrap(err, "create arrow reader")
	}

	tbl, err := arrowRdr.ReadTable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read table")
	}

	return tbl, nil
}

// Inspect reads a file's metadata without materializing its rows: size on
// disk, row count, and the Arrow schema.
func Inspect(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat parquet file")
	}

	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, errors.Wrap(err, "open parquet file")
	}
	defer rdr.Close()

	arrowRdr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, errors.Wrap(err, "create arrow reader")
	}

	schema, err := arrowRdr.Schema()
	if err != nil {
		return nil, errors.Wrap(err, "read schema")
	}

	return &FileInfo{
		Path:    path,
		Size:    stat.Size(),
		Rows:    rdr.NumRows(),
		Columns: schema.NumFields(),
		Schema:  schema,
	}, nil
}
