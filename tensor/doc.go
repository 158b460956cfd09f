// Package tensor provides dense, fixed-size numeric tables with three or
// four indices, stored in a single contiguous row-major buffer.
//
// What:
//
//   - T3 / T4 — float64 tables indexed by (i,j,k) / (i,j,k,l).
//   - I3 — int table indexed by (i,j,k), used for strategy lookups.
//   - All dimensions are fixed at construction; indexing is a computed
//     linear offset, never a slice-of-slices walk.
//
// Why:
//
//   - The solver's hot loops read and write millions of cells per sweep;
//     a flat buffer keeps the access pattern cache-friendly and allocation
//     free after construction.
//   - Adjacent-index access (i+1, j+1) is load-bearing for the backward
//     induction, so bound conventions stay explicit and inclusive-friendly:
//     a table covering 0..max is built with length max+1 per axis.
//
// Complexity:
//
//   - At/Set/Add: O(1), no bounds beyond the runtime's slice check.
//   - Fill/Clone: O(n) over the full buffer.
//
// Memory:
//
//   - O(d1·d2·d3[·d4]) float64/int cells, one allocation per table.
package tensor
