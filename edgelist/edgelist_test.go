package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/edgelist"
)

var want = []core.Edge{
	{From: 0, To: 2, Length: 1},
	{From: 2, To: 4, Length: 7},
}

func TestDecode_Formats(t *testing.T) {
	cases := []struct {
		name   string
		format edgelist.Format
		doc    string
	}{
		{"text", edgelist.FormatText, "# from to length\n0 2 1\n\n  2\t4 7   # trailing comment\n"},
		{"yaml", edgelist.FormatYAML, "edges:\n  - {from: 0, to: 2, length: 1}\n  - from: 2\n    to: 4\n    length: 7\n"},
		{"toml", edgelist.FormatTOML, "[[edges]]\nfrom = 0\nto = 2\nlength = 1\n\n[[edges]]\nfrom = 2\nto = 4\nlength = 7\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := edgelist.Decode(strings.NewReader(tc.doc), tc.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, f := range []edgelist.Format{edgelist.FormatText, edgelist.FormatYAML, edgelist.FormatTOML} {
		got, err := edgelist.Decode(strings.NewReader(""), f)
		require.NoError(t, err, f.String())
		assert.Empty(t, got, f.String())
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		format edgelist.Format
		doc    string
		msg    string
	}{
		{"text field count", edgelist.FormatText, "0 1 2\n0 1\n", "line 2"},
		{"text bad number", edgelist.FormatText, "0 x 2\n", "line 1: to"},
		{"text bad length", edgelist.FormatText, "0 1 1.5\n", "line 1: length"},
		{"yaml missing length", edgelist.FormatYAML, "edges:\n  - {from: 0, to: 1}\n", "edge #0"},
		{"yaml unknown key", edgelist.FormatYAML, "edges:\n  - {from: 0, to: 1, length: 1, weight: 3}\n", "weight"},
		{"toml unknown key", edgelist.FormatTOML, "[[edges]]\nfrom = 0\nto = 1\nlength = 1\ncolor = \"red\"\n", "color"},
		{"toml syntax", edgelist.FormatTOML, "[[edges]\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Decode(strings.NewReader(tc.doc), tc.format)
			require.ErrorIs(t, err, edgelist.ErrMalformed)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestDecode_NegativeValuesPassThrough(t *testing.T) {
	// Range checks belong to core.BuildGraph.
	got, err := edgelist.Decode(strings.NewReader("-1 2 -5\n"), edgelist.FormatText)
	require.NoError(t, err)

	_, err = core.BuildGraph(got)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)
}

func TestParseFormat(t *testing.T) {
	for name, f := range map[string]edgelist.Format{
		"text": edgelist.FormatText,
		"TXT":  edgelist.FormatText,
		"yaml": edgelist.FormatYAML,
		"yml":  edgelist.FormatYAML,
		"toml": edgelist.FormatTOML,
	} {
		got, err := edgelist.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, f, got, name)
	}

	_, err := edgelist.ParseFormat("csv")
	assert.ErrorIs(t, err, edgelist.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, edgelist.FormatYAML, edgelist.FormatFromPath("g.yaml"))
	assert.Equal(t, edgelist.FormatYAML, edgelist.FormatFromPath("dir/G.YML"))
	assert.Equal(t, edgelist.FormatTOML, edgelist.FormatFromPath("g.toml"))
	assert.Equal(t, edgelist.FormatText, edgelist.FormatFromPath("g.edges"))
	assert.Equal(t, edgelist.FormatText, edgelist.FormatFromPath("graph"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edges:\n  - {from: 0, to: 2, length: 1}\n  - {from: 2, to: 4, length: 7}\n"), 0o644))

	got, err := edgelist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = edgelist.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2\n"), 0o644))
	_, err = edgelist.Load(bad)
	require.ErrorIs(t, err, edgelist.ErrMalformed)
	assert.Contains(t, err.Error(), bad)
}

func TestSample(t *testing.T) {
	edges := edgelist.Sample()
	require.Len(t, edges, 14)

	g, err := core.BuildGraph(edges)
	require.NoError(t, err)
	assert.Equal(t, 8, g.NodeCount())
}
