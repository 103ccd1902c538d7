// Package rsk reconstructs permutations from pairs of standard Young tableaux
// of equal shape, the inverse direction of the Robinson–Schensted–Knuth
// correspondence.
//
// Two procedures are provided:
//
//   - Inverse: the shortcut used by the interactive sampler. For k = n … 1 it
//     locates k in Q at (r,c), emits σ[k−1] = P[r][c], deletes that cell from
//     both tableaux and drops the row once it is empty. No bumping chain is
//     run, so the result equals the true inverse RSK only when no chain can
//     form (single-row shapes). It is nevertheless always a permutation, since
//     each step consumes exactly one cell of P.
//   - InverseBumping: canonical inverse RSK. After deleting the cell the value
//     is reverse-bumped up through rows r−1 … 0, each row trading its largest
//     entry smaller than the carried value. Bijective on SYT pairs.
//
// Both procedures consume their arguments: P and Q end with zero rows. Pass
// Clone()s when the caller still needs the tableaux.
package rsk
