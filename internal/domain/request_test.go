package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "valid",
			req:  Request{FileName: "notes.md", TargetDir: "/tmp"},
		},
		{
			name:    "missing file name",
			req:     Request{TargetDir: "/tmp"},
			wantErr: ErrMissingFileName,
		},
		{
			name:    "whitespace file name",
			req:     Request{FileName: "   ", TargetDir: "/tmp"},
			wantErr: ErrMissingFileName,
		},
		{
			name:    "missing target dir",
			req:     Request{FileName: "notes.md"},
			wantErr: ErrMissingTargetDir,
		},
		{
			name:    "file name checked first",
			req:     Request{},
			wantErr: ErrMissingFileName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRepoRelative(t *testing.T) {
	tests := []struct {
		dir      string
		wantRest string
		wantOK   bool
	}{
		{dir: "@", wantRest: "", wantOK: true},
		{dir: "@/docs", wantRest: "docs", wantOK: true},
		{dir: "@/docs/notes", wantRest: "docs/notes", wantOK: true},
		{dir: "/tmp", wantOK: false},
		{dir: "docs", wantOK: false},
		{dir: "@docs", wantOK: false},
		{dir: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			rest, ok := RepoRelative(tt.dir)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}
