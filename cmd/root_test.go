package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "gnlex", cmd.Use)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, v := range []string{
		"add", "update", "delete", "show", "search", "suggest",
		"check", "report", "sweep", "import", "export", "recalc",
	} {
		assert.Contains(t, names, v)
	}
}

func TestRootCmdVersion(t *testing.T) {
	tests := []struct {
		name string
		flag string
	}{
		{"long", "--version"},
		{"short", "-V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := getRootCmd()
			cmd.Version = "version: v1.2.3\nbuild:   abc123"

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{tt.flag})
			require.NoError(t, cmd.Execute())

			assert.Contains(t, buf.String(), "v1.2.3")
			assert.Contains(t, buf.String(), "abc123")
		})
	}
}

func TestPersistentFlags(t *testing.T) {
	cmd := getRootCmd()
	tests := []struct {
		name      string
		shorthand string
	}{
		{"backend", "b"},
		{"sqlite-path", ""},
		{"jobs", "j"},
		{"ignore-case", "i"},
	}

	for _, tt := range tests {
		f := cmd.PersistentFlags().Lookup(tt.name)
		require.NotNil(t, f, tt.name)
		assert.Equal(t, tt.shorthand, f.Shorthand, tt.name)
	}
}

func TestFlagOptions(t *testing.T) {
	cmd := getRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--backend", "postgres", "-j", "3",
	}))
	assert.Len(t, flagOptions(cmd), 2)

	cmd = getRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	assert.Empty(t, flagOptions(cmd))
}
