package iogrammar

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/errcode"
)

func ReadFileError(path string, err error) error {
	msg := "Cannot read grammar file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func ParseError(path string, err error) error {
	msg := "Grammar file <em>%s</em> is not valid YAML"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GrammarParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse grammar: %w", fn, err),
	}
}

func PatternError(path string, err error) error {
	msg := "Grammar file <em>%s</em> has invalid rules: %s"
	vars := []any{path, err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GrammarPatternError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid grammar: %w", fn, err),
	}
}
