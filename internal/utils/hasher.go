package utils

import "hash/fnv"

// StableHash returns a deterministic 32-bit FNV-1a hash of the input
// string. Unlike a per-process map hash it is stable across runs and
// machines, so synthetic data derived from it is reproducible.
func StableHash(input string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(input))
	return h.Sum32()
}

// StableUnit maps the input string onto [0.0, 1.0) deterministically.
func StableUnit(input string) float64 {
	return float64(StableHash(input)%1000) / 1000.0
}
