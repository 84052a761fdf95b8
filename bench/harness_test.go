package bench_test

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/samueldeng/clist/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSetRejectsMultiWorkerOnUnsafeAdapter(t *testing.T) {
	cfg := bench.DefaultSetWorkloadConfig()
	cfg.NumOperations = 100
	rng := rand.New(rand.NewSource(1))
	ops := bench.GenerateSetOps(cfg, rng)

	_, err := bench.RunSet(bench.RunSetConfig{
		Name:     "sequential",
		Adapter:  bench.NewSequentialAdapter(-1<<30, 1<<30),
		Workload: ops,
		Workers:  4,
		Duration: 10 * time.Millisecond,
	})
	assert.Error(t, err)
}

func TestRunSetSequentialSingleWorker(t *testing.T) {
	cfg := bench.DefaultSetWorkloadConfig()
	cfg.NumOperations = 500
	cfg.WarmupOperations = 50
	rng := rand.New(rand.NewSource(2))
	warmup := bench.GenerateSetOps(bench.SetWorkloadConfig{NumOperations: cfg.WarmupOperations, ValueRange: cfg.ValueRange, AddRatio: cfg.AddRatio, RemoveRatio: cfg.RemoveRatio}, rng)
	ops := bench.GenerateSetOps(cfg, rng)

	result, err := bench.RunSet(bench.RunSetConfig{
		Name:     "sequential",
		Adapter:  bench.NewSequentialAdapter(-1<<30, 1<<30),
		Warmup:   warmup,
		Workload: ops,
		Workers:  1,
		Duration: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Workers)
	assert.Greater(t, result.ItemsDone, int64(0))
}

func TestRunSetFineMultiWorker(t *testing.T) {
	cfg := bench.DefaultSetWorkloadConfig()
	cfg.NumOperations = 2000
	rng := rand.New(rand.NewSource(3))
	ops := bench.GenerateSetOps(cfg, rng)

	result, err := bench.RunSet(bench.RunSetConfig{
		Name:     "fine",
		Adapter:  bench.NewFineAdapter(-1<<30, 1<<30),
		Workload: ops,
		Workers:  8,
		Duration: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, result.Workers)
	assert.Greater(t, result.ItemsDone, int64(0))
}

func TestRunSetCoarseMultiWorker(t *testing.T) {
	cfg := bench.DefaultSetWorkloadConfig()
	cfg.NumOperations = 2000
	rng := rand.New(rand.NewSource(4))
	ops := bench.GenerateSetOps(cfg, rng)

	result, err := bench.RunSet(bench.RunSetConfig{
		Name:     "coarse",
		Adapter:  bench.NewCoarseAdapter(-1<<30, 1<<30),
		Workload: ops,
		Workers:  4,
		Duration: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Workers)
}

func TestRunSetBTreeBaselineRejectsMultiWorker(t *testing.T) {
	cfg := bench.DefaultSetWorkloadConfig()
	cfg.NumOperations = 100
	rng := rand.New(rand.NewSource(5))
	ops := bench.GenerateSetOps(cfg, rng)

	_, err := bench.RunSet(bench.RunSetConfig{
		Name:     "btree",
		Adapter:  bench.NewBTreeSetAdapter(),
		Workload: ops,
		Workers:  2,
		Duration: 10 * time.Millisecond,
	})
	assert.Error(t, err)

	result, err := bench.RunSet(bench.RunSetConfig{
		Name:     "btree",
		Adapter:  bench.NewBTreeSetAdapter(),
		Workload: ops,
		Workers:  1,
		Duration: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Greater(t, result.ItemsDone, int64(0))
}

func TestRunSetLockedBTreeMultiWorker(t *testing.T) {
	cfg := bench.DefaultSetWorkloadConfig()
	cfg.NumOperations = 1000
	rng := rand.New(rand.NewSource(6))
	ops := bench.GenerateSetOps(cfg, rng)

	result, err := bench.RunSet(bench.RunSetConfig{
		Name:     "locked-btree",
		Adapter:  bench.NewLockedBTreeSetAdapter(),
		Workload: ops,
		Workers:  4,
		Duration: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Workers)
}

func TestRunPQFineMultiWorker(t *testing.T) {
	cfg := bench.DefaultPQWorkloadConfig()
	cfg.NumOperations = 2000
	rng := rand.New(rand.NewSource(7))
	ops := bench.GeneratePQOps(cfg, rng)

	result, err := bench.RunPQ(bench.RunPQConfig{
		Name:     "fine-pq",
		Adapter:  bench.NewFinePQAdapter(-1<<30, 1<<30),
		Workload: ops,
		Workers:  8,
		Duration: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, result.Workers)
}

func TestRunPQHeapBaselineRejectsMultiWorker(t *testing.T) {
	cfg := bench.DefaultPQWorkloadConfig()
	cfg.NumOperations = 100
	rng := rand.New(rand.NewSource(8))
	ops := bench.GeneratePQOps(cfg, rng)

	_, err := bench.RunPQ(bench.RunPQConfig{
		Name:     "heap",
		Adapter:  bench.NewHeapPQAdapter(),
		Workload: ops,
		Workers:  3,
		Duration: 10 * time.Millisecond,
	})
	assert.Error(t, err)
}

func TestResultStorePutAndList(t *testing.T) {
	dir := t.TempDir()
	store, err := bench.OpenResultStore(filepath.Join(dir, "results"))
	require.NoError(t, err)
	defer store.Close()

	r1 := bench.Result{Name: "fine", Workers: 4, ItemsDone: 100}
	r2 := bench.Result{Name: "coarse", Workers: 2, ItemsDone: 50}

	require.NoError(t, store.Put(1000, r1))
	require.NoError(t, store.Put(2000, r2))

	got, err := store.List(0, 3000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "fine", got[0].Name)
	assert.Equal(t, "coarse", got[1].Name)

	got, err = store.List(1500, 3000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "coarse", got[0].Name)
}
