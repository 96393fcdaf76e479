package usecase

import (
	"context"
	"testing"

	"github.com/codinganovel/texty/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEditors(t *testing.T) {
	finder := &testutil.MockFinder{Available: map[string]string{
		"code": "/usr/local/bin/code",
		"nano": "/usr/bin/nano",
	}}
	resolver := NewResolveEditor(&testutil.MockConfigLoader{}, finder).
		WithEnv(func(string) string { return "" })
	uc := NewListEditors(finder, resolver)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, out.Editors)

	byCommand := make(map[string]EditorStatus)
	for _, e := range out.Editors {
		byCommand[e.Command] = e
	}

	assert.True(t, byCommand["code"].Available)
	assert.Equal(t, "/usr/local/bin/code", byCommand["code"].Path)
	assert.True(t, byCommand["code"].Current, "probe resolves to code first")
	assert.True(t, byCommand["nano"].Available)
	assert.False(t, byCommand["nano"].Current)
	assert.False(t, byCommand["vim"].Available)

	assert.Equal(t, "code", out.Resolved.Command)
	assert.Equal(t, EditorSourceProbe, out.Resolved.Source)
}

func TestListTemplates(t *testing.T) {
	store := &testutil.MockTemplateStore{Infos: nil}
	uc := NewListTemplates(store)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, out.Templates)
}
