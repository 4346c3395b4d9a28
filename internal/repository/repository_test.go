package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tj/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/katiamach/xray-contours-api/internal/metrics"
	"github.com/katiamach/xray-contours-api/internal/model"
)

const jsonStore = `{
	"spt_8": {
		"levels": [4.0, 1.0, 2.0],
		"curves": [
			[[[356.26, -42.82], [356.27, -42.81], [356.28, -42.82]]],
			[[[356.20, -42.80], [356.21, -42.79], [356.22, -42.80]], [[356.30, -42.90], [356.31, -42.91]]],
			[]
		]
	},
	"spt_9": {"levels": [], "curves": []}
}`

const yamlStore = `
spt_8:
  levels: [4.0, 1.0, 2.0]
  curves:
    - - [[356.26, -42.82], [356.27, -42.81], [356.28, -42.82]]
    - - [[356.20, -42.80], [356.21, -42.79], [356.22, -42.80]]
      - [[356.30, -42.90], [356.31, -42.91]]
    - []
`

const badValuesStore = `
nan:
  levels: [.nan, 1.0]
  curves: [[], []]
inf:
  levels: [1.0, .inf]
  curves: [[], []]
neg:
  levels: [-1.0, 1.0]
  curves: [[], []]
zero:
  levels: [0.0]
  curves: [[]]
nan_point:
  levels: [1.0]
  curves:
    - - [[356.26, .nan], [356.27, -42.81]]
inf_point:
  levels: [1.0]
  curves:
    - - [[-.inf, -42.82]]
`

var expectedRecord = &model.ClusterRecord{
	Name:   "spt_8",
	Levels: []float64{4.0, 1.0, 2.0},
	Curves: [][]model.Polygon{
		{
			{{356.26, -42.82}, {356.27, -42.81}, {356.28, -42.82}},
		},
		{
			{{356.20, -42.80}, {356.21, -42.79}, {356.22, -42.80}},
			{{356.30, -42.90}, {356.31, -42.91}},
		},
		{},
	},
}

func bsonStore(t *testing.T) []byte {
	t.Helper()

	data, err := bson.Marshal(bson.D{
		{Key: "spt_8", Value: bson.D{
			{Key: "levels", Value: bson.A{4.0, 1.0, 2.0}},
			{Key: "curves", Value: bson.A{
				bson.A{
					bson.A{bson.A{356.26, -42.82}, bson.A{356.27, -42.81}, bson.A{356.28, -42.82}},
				},
				bson.A{
					bson.A{bson.A{356.20, -42.80}, bson.A{356.21, -42.79}, bson.A{356.22, -42.80}},
					bson.A{bson.A{356.30, -42.90}, bson.A{356.31, -42.91}},
				},
				bson.A{},
			}},
		}},
		{Key: "not_a_cluster", Value: "text"},
	})
	assert.NoError(t, err)

	return data
}

func writeStore(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, data, 0o600)
	assert.NoError(t, err)

	return path
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		file string
		data []byte
	}{
		{name: "json", file: "res_12.json", data: []byte(jsonStore)},
		{name: "bson", file: "res_12.bson", data: bsonStore(t)},
		{name: "yaml", file: "res_12.yaml", data: []byte(yamlStore)},
		{name: "yml upper case extension", file: "res_12.YML", data: []byte(yamlStore)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeStore(t, dir, tc.file, tc.data)
			repo := New("", nil)

			record, err := repo.Load(context.Background(), path, "spt_8")
			assert.NoError(t, err)
			assert.Equal(t, expectedRecord, record)
		})
	}
}

func TestLoadEmptyCluster(t *testing.T) {
	path := writeStore(t, t.TempDir(), "res.json", []byte(jsonStore))
	repo := New("", nil)

	record, err := repo.Load(context.Background(), path, "spt_9")
	assert.NoError(t, err)
	assert.Empty(t, record.Levels)
	assert.Empty(t, record.Curves)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	jsonPath := writeStore(t, dir, "res.json", []byte(jsonStore))
	bsonPath := writeStore(t, dir, "res.bson", bsonStore(t))
	mismatched := writeStore(t, dir, "mismatched.json", []byte(`{"c": {"levels": [1.0, 2.0], "curves": [[]]}}`))
	badPoint := writeStore(t, dir, "bad_point.json", []byte(`{"c": {"levels": [1.0], "curves": [[[[1.0, 2.0, 3.0]]]]}}`))
	notJSON := writeStore(t, dir, "garbage.json", []byte(`levels: [1`))
	notBSON := writeStore(t, dir, "garbage.bson", []byte(`{}`))
	pickle := writeStore(t, dir, "res_12.pkl", []byte{0x80, 0x04})
	badValues := writeStore(t, dir, "bad_values.yaml", []byte(badValuesStore))

	cases := []struct {
		name          string
		path          string
		cluster       string
		expectedError error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.json"), cluster: "spt_8", expectedError: ErrNotFound},
		{name: "missing json cluster", path: jsonPath, cluster: "spt_1", expectedError: ErrNotFound},
		{name: "missing bson cluster", path: bsonPath, cluster: "spt_1", expectedError: ErrNotFound},
		{name: "bson cluster is not a document", path: bsonPath, cluster: "not_a_cluster", expectedError: ErrCorruptStore},
		{name: "levels and curves mismatch", path: mismatched, cluster: "c", expectedError: ErrCorruptStore},
		{name: "point with three coordinates", path: badPoint, cluster: "c", expectedError: ErrCorruptStore},
		{name: "undecodable json", path: notJSON, cluster: "c", expectedError: ErrCorruptStore},
		{name: "undecodable bson", path: notBSON, cluster: "c", expectedError: ErrCorruptStore},
		{name: "pickle is not supported", path: pickle, cluster: "spt_8", expectedError: ErrUnsupportedFormat},
		{name: "nan level", path: badValues, cluster: "nan", expectedError: ErrCorruptStore},
		{name: "infinite level", path: badValues, cluster: "inf", expectedError: ErrCorruptStore},
		{name: "negative level", path: badValues, cluster: "neg", expectedError: ErrCorruptStore},
		{name: "zero level", path: badValues, cluster: "zero", expectedError: ErrCorruptStore},
		{name: "nan coordinate", path: badValues, cluster: "nan_point", expectedError: ErrCorruptStore},
		{name: "infinite coordinate", path: badValues, cluster: "inf_point", expectedError: ErrCorruptStore},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := New("", nil)

			record, err := repo.Load(context.Background(), tc.path, tc.cluster)
			assert.Nil(t, record)
			assert.True(t, errors.Is(err, tc.expectedError), "unexpected error: %v", err)
		})
	}
}

func TestLoadMissingFileKeepsCause(t *testing.T) {
	repo := New("", nil)

	_, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "spt_8")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadStoreDir(t *testing.T) {
	dir := t.TempDir()
	writeStore(t, dir, "res.json", []byte(jsonStore))
	repo := New(dir, nil)

	record, err := repo.Load(context.Background(), "res.json", "spt_8")
	assert.NoError(t, err)
	assert.Equal(t, expectedRecord.Levels, record.Levels)

	_, err = repo.Load(context.Background(), "../res.json", "spt_8")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = repo.Load(context.Background(), "sub/../../res.json", "spt_8")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadCanceledContext(t *testing.T) {
	path := writeStore(t, t.TempDir(), "res.json", []byte(jsonStore))
	repo := New("", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx, path, "spt_8")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadMetricsOutcomes(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, "bad_values.yaml", []byte(badValuesStore))
	m := metrics.NewForTesting()
	repo := New("", m)

	_, err := repo.Load(context.Background(), path, "neg")
	assert.True(t, errors.Is(err, ErrCorruptStore))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.Load(ctx, path, "neg")
	assert.True(t, errors.Is(err, context.Canceled))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreLoads.WithLabelValues("yaml", "corrupt")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreLoads.WithLabelValues("yaml", "canceled")))
}

func TestLoadMetrics(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, "res.json", []byte(jsonStore))
	m := metrics.NewForTesting()
	repo := New("", m)

	_, err := repo.Load(context.Background(), path, "spt_8")
	assert.NoError(t, err)
	_, err = repo.Load(context.Background(), path, "spt_1")
	assert.Error(t, err)
	_, err = repo.Load(context.Background(), filepath.Join(dir, "res.pkl"), "spt_8")
	assert.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreLoads.WithLabelValues("json", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreLoads.WithLabelValues("json", "not_found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreLoads.WithLabelValues("unknown", "unsupported")))
}
