package histstore_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celldyn/mtstat/history"
	"github.com/celldyn/mtstat/histstore"
	"github.com/celldyn/mtstat/state"
	"github.com/celldyn/mtstat/testutil"
)

func testCell() *history.Cell {
	c := testutil.Cell(history.V2, testutil.Filament(history.V2,
		testutil.Event{Time: 0, From: state.Growing, To: state.Shrinking},
		testutil.Event{Time: 5, From: state.Shrinking, To: state.Growing},
	))
	c.Time = 5
	return c
}

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	m := histstore.NewMem()
	m.Put("a.dat", []byte("payload"))

	rc, err := m.Open(ctx, "a.dat")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	_, err = m.Open(ctx, "missing.dat")
	assert.ErrorIs(t, err, histstore.ErrNotFound)
}

func TestMemStorePutCopies(t *testing.T) {
	m := histstore.NewMem()
	buf := []byte("payload")
	m.Put("a.dat", buf)
	buf[0] = 'X'

	rc, err := m.Open(context.Background(), "a.dat")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, []byte("payload"), data)
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dat"), []byte("payload"), 0o644))

	d := histstore.NewDir(dir)
	rc, err := d.Open(context.Background(), "a.dat")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	_, err = d.Open(context.Background(), "missing.dat")
	assert.ErrorIs(t, err, histstore.ErrNotFound)
}

func TestOpenDecoded(t *testing.T) {
	raw := testutil.EncodeCell(testCell())

	zw, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zstData := zw.EncodeAll(raw, nil)
	require.NoError(t, zw.Close())

	var lz4Buf bytes.Buffer
	lw := lz4.NewWriter(&lz4Buf)
	_, err = lw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	_, err = gw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	m := histstore.NewMem()
	m.Put("cell.dat", raw)
	m.Put("cell.dat.zst", zstData)
	m.Put("cell.dat.lz4", lz4Buf.Bytes())
	m.Put("cell.dat.gz", gzBuf.Bytes())

	for _, name := range []string{"cell.dat", "cell.dat.zst", "cell.dat.lz4", "cell.dat.gz"} {
		t.Run(name, func(t *testing.T) {
			rc, err := histstore.OpenDecoded(context.Background(), m, name)
			require.NoError(t, err)
			defer rc.Close()

			cell, err := history.ReadCell(rc, history.V2)
			require.NoError(t, err)
			assert.Equal(t, 5.0, cell.Time)
			require.Len(t, cell.Filaments, 1)
			assert.Equal(t, 2, cell.Filaments[0].Len())
		})
	}
}

func TestOpenDecodedMissing(t *testing.T) {
	_, err := histstore.OpenDecoded(context.Background(), histstore.NewMem(), "nope.dat.zst")
	assert.ErrorIs(t, err, histstore.ErrNotFound)
}

func TestLoadCells(t *testing.T) {
	raw := testutil.EncodeCell(testCell())
	m := histstore.NewMem()
	names := []string{"c1.dat", "c2.dat", "c3.dat"}
	for _, n := range names {
		m.Put(n, raw)
	}

	cells, err := histstore.LoadCells(context.Background(), m, names, history.V2, 2)
	require.NoError(t, err)
	require.Len(t, cells, 3)
	for _, c := range cells {
		require.NotNil(t, c)
		assert.Equal(t, 5.0, c.Time)
	}
}

func TestLoadCellsPropagatesErrors(t *testing.T) {
	m := histstore.NewMem()
	m.Put("ok.dat", testutil.EncodeCell(testCell()))

	_, err := histstore.LoadCells(context.Background(), m,
		[]string{"ok.dat", "missing.dat"}, history.V2, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, histstore.ErrNotFound))
}
