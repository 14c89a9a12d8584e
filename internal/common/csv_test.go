package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRow struct {
	ID    string `csv:"id"`
	Label string `csv:"label"`
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	rows := []sampleRow{
		{ID: "1", Label: "first"},
		{ID: "2", Label: "second"},
	}
	require.NoError(t, WriteCSVFile(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,label\n1,first\n2,second\n", string(data))
}

func TestWriteCSVFile_EmptySliceWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteCSVFile([]sampleRow{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id")
	assert.Contains(t, string(data), "label")
}

func TestWriteCSVFile_NilSliceWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nil.csv")

	require.NoError(t, WriteCSVFile[sampleRow](nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id,label")
}

func TestSetDelimiter(t *testing.T) {
	orig := Delimiter
	defer SetDelimiter(orig)

	SetDelimiter(';')
	assert.Equal(t, ';', Delimiter)

	path := filepath.Join(t.TempDir(), "semi.csv")
	require.NoError(t, WriteCSVFile([]sampleRow{{ID: "1", Label: "x"}}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id;label")
}
