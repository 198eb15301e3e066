// Package bitmat implements packed, growable bit matrices used by the
// polytope store for vertex↔facet incidence bitmaps.
//
// A Matrix is a slice of rows, each row a *bitset.BitSet. Rows grow and
// shrink independently; GrowColumns extends every row by one bit in
// amortised O(1) (the underlying bitset.BitSet doubles its backing word
// array on overflow, exactly as github.com/bits-and-blooms/bitset always
// has). CompressColumns rewrites every row to drop columns marked for
// removal and renumbers the rest, preserving relative order.
package bitmat
