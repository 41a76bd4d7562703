package core

import "hash/fnv"

// Hash computes the 32-bit FNV-1a hash of key. The empty span hashes to the
// FNV offset basis (2166136261). Results must match the companion C and
// Python implementations byte for byte, so callers always pass an explicit
// span; there is no terminator scanning.
func Hash(key []byte) uint32 {
	hash := fnv.New32a()
	hash.Write(key)
	return hash.Sum32()
}

// Partition maps key to a shard index in [0, numPartitions). The modulo is
// taken in unsigned 32-bit space so the result can never be negative.
func Partition(key []byte, numPartitions int) int {
	if numPartitions <= 0 {
		return 0
	}
	return int(Hash(key) % uint32(numPartitions))
}
