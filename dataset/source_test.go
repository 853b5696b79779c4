package dataset

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLocalSourceOpen(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "features.json", []byte(`[[1,2]]`))

	rc, err := LocalSource{}.Open(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `[[1,2]]`, string(data))
}

func TestLocalSourceNotFound(t *testing.T) {
	ctx := context.Background()

	_, err := LocalSource{}.Open(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalSourceGzip(t *testing.T) {
	ctx := context.Background()

	raw := []byte(`[[1,2],[3,4]]`)

	tmp := filepath.Join(t.TempDir(), "features.json.gz")
	f, err := os.Create(tmp)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	rc, err := LocalSource{}.Open(ctx, tmp)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestLocalSourceLZ4(t *testing.T) {
	ctx := context.Background()
	raw := []byte(`["a","b"]`)

	tmp := filepath.Join(t.TempDir(), "labels.json.lz4")
	f, err := os.Create(tmp)
	require.NoError(t, err)
	zw := lz4.NewWriter(f)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	rc, err := LocalSource{}.Open(ctx, tmp)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestLocalSourceZstd(t *testing.T) {
	ctx := context.Background()
	raw := []byte(`[[0,0.5],[1,1]]`)

	tmp := filepath.Join(t.TempDir(), "queries.json.zst")
	f, err := os.Create(tmp)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	rc, err := LocalSource{}.Open(ctx, tmp)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestLocalSourceGzipGarbage(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "features.json.gz", []byte("not gzip at all"))

	_, err := LocalSource{}.Open(ctx, path)
	var malformed *ErrMalformedInput
	assert.ErrorAs(t, err, &malformed)
}

func TestReadVectors(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "queries.json", []byte(`[[0,0.5]]`))

	got, err := ReadVectors(ctx, LocalSource{}, path)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{0, 0.5}}, got)
}

func TestReadLabels(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "labels.json", []byte(`[1, "b"]`))

	got, err := ReadLabels(ctx, LocalSource{}, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "b"}, got)
}
