// Package shape models integer partitions (Young diagram shapes) and the
// ways rskperm obtains them: validation of caller input, the compact text
// syntax "50^50, 3", staircase and rectangle constructors, quantization
// of a user-drawn border grid into a partition, and resizing to n cells.
//
// Rows are listed top to bottom; row 0 is the longest. A Partition is valid
// iff it is non-empty, every row is ≥ 1, rows are weakly decreasing and it
// has at most MaxCells cells.
package shape
