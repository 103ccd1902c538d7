// Package tableau implements Young tableaux over a shape.Partition and the
// Greene–Nijenhuis–Wilf hook-walk sampler that draws a standard Young tableau
// (SYT) uniformly at random.
//
// The package offers the following key components:
//
//   - Tableau: a jagged grid of labels, 0 meaning “empty”. Constructed empty
//     via New or from literal rows via FromRows; deep-copied via Clone.
//     Structural mutators (DeleteCell, DropRow, Set) exist for consumers such
//     as the inverse RSK in package rsk, which shrink tableaux to nothing.
//   - Sample: one uniformly random SYT, labels placed from n down to 1, each
//     at the corner reached by a hook walk from a uniformly random empty cell.
//   - SamplePair / SamplePairParallel: two independent SYT of one shape, either
//     sequentially on a shared Source or concurrently on two Sources.
//   - Options: WithSource, WithMaxAttempts, WithLogger.
//
// Guarantees:
//
//   - Every tableau returned by the samplers passes Validate: shape preserved,
//     labels 1..n each exactly once, rows and columns strictly increasing.
//   - The empty-cell pick is bounded: exhausting WithMaxAttempts returns
//     ErrSamplingExhausted instead of spinning forever.
//   - Entropy failures surface as random.ErrEntropyUnavailable; the samplers
//     never substitute a weaker generator.
//
// Complexity: O(n·(R+C)) walk work plus expected O(R·C·ln n) rejection draws
// for a shape with R rows, C columns and n cells.
package tableau
