package rowstore

// BucketsFor returns the number of 2^power row buckets needed for rows.
func BucketsFor(rows uint64, power uint8) uint64 {
	size := uint64(1) << power
	return (rows + size - 1) / size
}

// AllocatedFor returns the bytes a store with the given bucket power
// reserves once it holds rows.
func AllocatedFor(rows uint64, power uint8) uint64 {
	return BucketsFor(rows, power) << power * RowBytes
}
