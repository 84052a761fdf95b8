package bench

import "math/rand"

// OpKind identifies the kind of a recorded set or priority-queue
// operation.
type OpKind int

const (
	OpAdd OpKind = iota
	OpRemove
	OpContains
	OpPush
	OpPop
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "ADD"
	case OpRemove:
		return "REMOVE"
	case OpContains:
		return "CONTAINS"
	case OpPush:
		return "PUSH"
	case OpPop:
		return "POP"
	default:
		return "UNKNOWN"
	}
}

// Operation is a single recorded workload entry: {kind, value} for sets,
// {PUSH(v)|POP} for the priority queue, per the benchmark harness
// contract.
type Operation[T any] struct {
	Kind  OpKind
	Value T
}

// SetWorkloadConfig configures generation of a set operation workload.
type SetWorkloadConfig struct {
	NumOperations    int
	WarmupOperations int
	ValueRange       int
	AddRatio         float64
	RemoveRatio      float64
	// ContainsRatio is implicitly 1 - AddRatio - RemoveRatio.
}

// DefaultSetWorkloadConfig mirrors the fixed workload shape used by the
// original C++ set benchmarks: 100k operations, a 10% warmup slice, a
// value range of 10k, and a 40/40/20 add/remove/contains split.
func DefaultSetWorkloadConfig() SetWorkloadConfig {
	return SetWorkloadConfig{
		NumOperations:    100_000,
		WarmupOperations: 10_000,
		ValueRange:       10_000,
		AddRatio:         0.40,
		RemoveRatio:      0.40,
	}
}

// GenerateSetOps produces count operations over [0, valueRange) split
// according to cfg's ratios, deterministic for a given rng.
func GenerateSetOps(cfg SetWorkloadConfig, rng *rand.Rand) []Operation[int] {
	ops := make([]Operation[int], cfg.NumOperations)
	for i := range ops {
		choice := rng.Float64()
		value := rng.Intn(cfg.ValueRange)
		switch {
		case choice < cfg.AddRatio:
			ops[i] = Operation[int]{Kind: OpAdd, Value: value}
		case choice < cfg.AddRatio+cfg.RemoveRatio:
			ops[i] = Operation[int]{Kind: OpRemove, Value: value}
		default:
			ops[i] = Operation[int]{Kind: OpContains, Value: value}
		}
	}
	return ops
}

// PQWorkloadConfig configures generation of a priority-queue workload.
type PQWorkloadConfig struct {
	NumOperations int
	ValueRange    int
	PushRatio     float64
}

// DefaultPQWorkloadConfig mirrors the fixed workload used by the
// original C++ priority-queue benchmarks.
func DefaultPQWorkloadConfig() PQWorkloadConfig {
	return PQWorkloadConfig{
		NumOperations: 100_000,
		ValueRange:    10_000,
		PushRatio:     0.6,
	}
}

// GeneratePQOps produces count PUSH/POP operations, weighted so the
// queue tends to grow rather than drain to empty immediately.
func GeneratePQOps(cfg PQWorkloadConfig, rng *rand.Rand) []Operation[int] {
	ops := make([]Operation[int], cfg.NumOperations)
	for i := range ops {
		if rng.Float64() < cfg.PushRatio {
			ops[i] = Operation[int]{Kind: OpPush, Value: rng.Intn(cfg.ValueRange)}
		} else {
			ops[i] = Operation[int]{Kind: OpPop}
		}
	}
	return ops
}
