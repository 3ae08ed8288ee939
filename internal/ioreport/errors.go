package ioreport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/errcode"
)

func ReportError(err error) error {
	return &gn.Error{
		Code: errcode.LexiconReportError,
		Msg:  "Cannot compute lexicon statistics",
		Err:  fmt.Errorf("cannot build report: %w", err),
	}
}
