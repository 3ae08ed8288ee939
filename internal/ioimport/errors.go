package ioimport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/errcode"
)

func ReadError(path string, err error) error {
	msg := "Cannot read word list <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func RecordError(path string, line int, err error) error {
	msg := "Cannot import line <em>%d</em> of <em>%s</em>"
	vars := []any{line, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: line %d: %w", fn, line, err),
	}
}
