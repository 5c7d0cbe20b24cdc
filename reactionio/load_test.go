package reactionio_test

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxncluster/engine/reactionio"
)

func gzipLines(t *testing.T, lines ...string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	w := gzip.NewWriter(buf)
	for _, line := range lines {
		_, err := w.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf
}

const wellFormed = `{"id":"r1","its":{"vertices":[{"id":"u","element":"C"},{"id":"v","element":"O"}],"edges":[{"from":"u","to":"v","order_pair":true,"order_a":1,"order_b":2,"standard_order":1}]}}`

func TestLoad_DecodesWellFormedArchive(t *testing.T) {
	records, err := reactionio.Load(gzipLines(t, wellFormed), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, 2, records[0].ITS.VertexCount())
	assert.Equal(t, 1, records[0].ITS.EdgeCount())
}

func TestLoad_MissingIDGetsSyntheticUUID(t *testing.T) {
	noID := `{"its":{"vertices":[{"id":"u"}],"edges":[]}}`
	records, err := reactionio.Load(gzipLines(t, noID), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)
}

func TestLoad_SkipsMalformedJSONButKeepsGoodRecords(t *testing.T) {
	records, err := reactionio.Load(gzipLines(t, "{not json", wellFormed), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)
}

func TestLoad_SkipsEdgeReferencingUnknownVertex(t *testing.T) {
	badEdge := `{"id":"r2","its":{"vertices":[{"id":"u"}],"edges":[{"from":"u","to":"ghost"}]}}`
	records, err := reactionio.Load(gzipLines(t, badEdge, wellFormed), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)
}

func TestLoad_EmptyArchiveYieldsNoRecords(t *testing.T) {
	records, err := reactionio.Load(gzipLines(t), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_NotGzipIsTruncatedArchiveError(t *testing.T) {
	_, err := reactionio.Load(bytes.NewBufferString("not gzip data"), nil)
	assert.ErrorIs(t, err, reactionio.ErrTruncatedArchive)
}
