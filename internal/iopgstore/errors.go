package iopgstore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/errcode"
)

func NotOpenError() error {
	return &gn.Error{
		Code: errcode.StorageNotOpenError,
		Msg:  "Lexicon storage is not open",
		Err:  fmt.Errorf("postgres storage is not open"),
	}
}

func SaveError(database string, err error) error {
	msg := "Cannot save lexicon to database <em>%s</em>"
	vars := []any{database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorageSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save lexicon: %w", fn, err),
	}
}

func LoadError(database string, err error) error {
	msg := "Cannot load lexicon from database <em>%s</em>"
	vars := []any{database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorageLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load lexicon: %w", fn, err),
	}
}

func VersionError(database, version string, err error) error {
	msg := "Lexicon in database <em>%s</em> was saved by unsupported version <em>%s</em>"
	vars := []any{database, version}
	return &gn.Error{
		Code: errcode.StorageVersionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported lexicon version: %w", err),
	}
}
