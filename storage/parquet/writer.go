// Package parquet is the persistence sink: one-shot serialization of Arrow
// records to Parquet files, plus the read side used for inspection.
package parquet

import (
	"os"
	"path/filepath"

	"github.com/TFMV/nowgen/pkg/errors"
	"github.com/apache/arrow-go/v18/arrow"
	arrowparquet "github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ParseCompression maps a config spelling to a Parquet codec.
func ParseCompression(s string) (compress.Compression, error) {
	switch s {
	case "", "snappy":
		return compress.Codecs.Snappy, nil
	case "zstd":
		return compress.Codecs.Zstd, nil
	case "gzip":
		return compress.Codecs.Gzip, nil
	case "brotli":
		return compress.Codecs.Brotli, nil
	case "lz4":
		return compress.Codecs.Lz4Raw, nil
	case "none", "uncompressed":
		return compress.Codecs.Uncompressed, nil
	default:
		return compress.Codecs.Uncompressed, errors.Newf(ParquetUnknownCompression, "unknown compression codec %q", s)
	}
}

// WriteRecord serializes a single record to a Parquet file at path,
// overwriting any existing file. The write is fire-and-forget: no rotation,
// no partial-write recovery.
func WriteRecord(rec arrow.Record, path string, codec compress.Compression) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.New(ParquetCreateDirFailed, "failed to create output directory", err).AddContext("path", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.New(ParquetCreateFileFailed, "failed to create Parquet file", err).AddContext("path", path)
	}

	props := arrowparquet.NewWriterProperties(arrowparquet.WithCompression(codec))
	writer, err := pqarrow.NewFileWriter(rec.Schema(), f, props, pqarrow.DefaultWriterProps())
	if err != nil {
		f.Close()
		return errors.New(ParquetCreateWriterFailed, "failed to create Parquet writer", err).AddContext("path", path)
	}

	if err := writer.Write(rec); err != nil {
		writer.Close()
		return errors.New(ParquetWriteFailed, "failed to write record to Parquet file", err).AddContext("path", path)
	}

	// Closing the writer also closes the underlying file
	if err := writer.Close(); err != nil {
		return errors.New(ParquetCloseFailed, "failed to close Parquet writer", err).AddContext("path", path)
	}

	return nil
}
