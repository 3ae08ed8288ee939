package iosqlite

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/errcode"
)

func OpenError(path string, err error) error {
	msg := "Cannot open lexicon file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorageOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func NotOpenError() error {
	return &gn.Error{
		Code: errcode.StorageNotOpenError,
		Msg:  "Lexicon storage is not open",
		Err:  fmt.Errorf("sqlite storage is not open"),
	}
}

func SchemaError(path string, err error) error {
	msg := "Cannot create tables in <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorageSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create schema: %w", fn, err),
	}
}

func SaveError(path string, err error) error {
	msg := "Cannot save lexicon to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorageSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save lexicon: %w", fn, err),
	}
}

func LoadError(path string, err error) error {
	msg := "Cannot load lexicon from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorageLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load lexicon: %w", fn, err),
	}
}

func VersionError(path, version string, err error) error {
	msg := "Lexicon in <em>%s</em> was saved by unsupported version <em>%s</em>"
	vars := []any{path, version}
	return &gn.Error{
		Code: errcode.StorageVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported lexicon version: %w", err),
	}
}
