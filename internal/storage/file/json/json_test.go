package json

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/free-perceptron/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID       string    `json:"id"`
	Accuracy float64   `json:"accuracy"`
	Weights  []float64 `json:"weights"`
}

func TestBlobStorage(t *testing.T) {
	dir, err := ioutil.TempDir("", "json-storage")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	s, err := BlobShard(dir, storage.ReportDir)("test")
	require.NoError(t, err)

	r := record{
		ID:       uuid.New().String(),
		Accuracy: 0.75,
		Weights:  []float64{0.1, -0.2},
	}
	k := storage.Key{Pair: r.ID, Label: "report"}

	err = s.Store(k, r)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, storage.ReportDir, "test", k.Path()))
	assert.NoError(t, err)

	var loaded record
	err = s.Load(k, &loaded)
	require.NoError(t, err)
	assert.Equal(t, r, loaded)
}

func TestLoad_Errors(t *testing.T) {
	dir, err := ioutil.TempDir("", "json-storage")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var v record
	err = Load(dir, "missing", &v)
	assert.True(t, errors.Is(err, storage.NotFoundErr))

	err = ioutil.WriteFile(filepath.Join(dir, "broken"), []byte("{"), 0644)
	require.NoError(t, err)
	err = Load(dir, "broken", &v)
	assert.True(t, errors.Is(err, storage.CouldNotLoadErr))
}

func TestSave_NotADir(t *testing.T) {
	dir, err := ioutil.TempDir("", "json-storage")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	f := filepath.Join(dir, "file")
	err = ioutil.WriteFile(f, []byte("x"), 0644)
	require.NoError(t, err)

	err = Save(f, "value", 1)
	assert.Error(t, err)
}
