package parquet

import "github.com/TFMV/nowgen/pkg/errors"

// Package-specific error codes for the parquet sink
var (
	ParquetCreateDirFailed    = errors.MustNewCode("parquet.create_dir_failed")
	ParquetCreateFileFailed   = errors.MustNewCode("parquet.create_file_failed")
	ParquetCreateWriterFailed = errors.MustNewCode("parquet.create_writer_failed")
	ParquetWriteFailed        = errors.MustNewCode("parquet.write_failed")
	ParquetCloseFailed        = errors.MustNewCode("parquet.close_failed")
	ParquetUnknownCompression = errors.MustNewCode("parquet.unknown_compression")
)
