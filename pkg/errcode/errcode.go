package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Grammar errors
	GrammarParseError
	GrammarPatternError

	// Lexicon errors
	LexiconReportError

	// Storage errors
	StorageOpenError
	StorageNotOpenError
	StorageSchemaError
	StorageSaveError
	StorageLoadError
	StorageVersionError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaMigrateError

	// Import/export errors
	ImportReadError
	ImportRecordError
	ExportWriteError
)
