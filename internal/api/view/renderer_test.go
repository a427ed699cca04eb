package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_RendersEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range pageNames {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, name, map[string]any{"Title": "T"}, nil), name)
		require.Contains(t, buf.String(), "<title>T</title>", name)
	}
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	require.Error(t, r.Render(&bytes.Buffer{}, "missing.html", nil, nil))
}
