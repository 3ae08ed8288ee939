package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors verifies codes, user messages and wrapping of file system
// errors.
func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{
			name: "CreateDirError",
			err:  CreateDirError("/test/dir", cause),
			code: errcode.CreateDirError,
			path: "/test/dir",
			text: "cannot create",
		},
		{
			name: "CopyFileError",
			err:  CopyFileError("/test/config.yaml", cause),
			code: errcode.CopyFileError,
			path: "/test/config.yaml",
			text: "cannot write",
		},
		{
			name: "ReadFileError",
			err:  ReadFileError("/test/grammar.yaml", cause),
			code: errcode.ReadFileError,
			path: "/test/grammar.yaml",
			text: "cannot read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), "from")
			assert.Contains(t, gnErr.Err.Error(), tt.text)
		})
	}
}
