package shares

// polynomial stores coefficients with coefficient[0] as the constant
// term, as is conventional. Its value at a point is found with Horner's
// method working from the highest-degree coefficient down.
type polynomial []byte

func (p polynomial) eval(x byte) byte {
	var result byte
	for i := len(p) - 1; i >= 0; i-- {
		result = add(mul(result, x), p[i])
	}
	return result
}

// solveConsistent solves the (possibly overdetermined) linear system
// a*x = b over GF(2^8), where a has n rows and `unknowns` columns. It
// reduces the full augmented matrix to row-echelon form using every row,
// so redundant equations beyond the first `unknowns` are not just
// discarded: if any of them contradicts the rest, the system is reported
// as inconsistent rather than silently solved from a subset. This is
// what lets decodeSymbol notice that more than the tolerated number of
// shares disagree, instead of quietly reconstructing from whichever
// shares happened to come first.
//
// Returns false if the system has rank less than `unknowns` (singular or
// underdetermined) or is inconsistent.
func solveConsistent(a [][]byte, b []byte, unknowns int) ([]byte, bool) {
	n := len(a)
	rows := make([][]byte, n)
	for i := range a {
		row := make([]byte, unknowns+1)
		copy(row, a[i])
		row[unknowns] = b[i]
		rows[i] = row
	}

	pivotRow := 0
	colOfPivotRow := make([]int, unknowns)

	for col := 0; col < unknowns && pivotRow < n; col++ {
		sel := -1
		for r := pivotRow; r < n; r++ {
			if rows[r][col] != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		rows[pivotRow], rows[sel] = rows[sel], rows[pivotRow]

		inverse := inv(rows[pivotRow][col])
		for c := col; c <= unknowns; c++ {
			rows[pivotRow][c] = mul(rows[pivotRow][c], inverse)
		}

		for r := 0; r < n; r++ {
			if r == pivotRow || rows[r][col] == 0 {
				continue
			}
			factor := rows[r][col]
			for c := col; c <= unknowns; c++ {
				rows[r][c] = add(rows[r][c], mul(factor, rows[pivotRow][c]))
			}
		}

		colOfPivotRow[pivotRow] = col
		pivotRow++
	}

	if pivotRow < unknowns {
		return nil, false
	}

	for r := pivotRow; r < n; r++ {
		for c := 0; c <= unknowns; c++ {
			if rows[r][c] != 0 {
				return nil, false
			}
		}
	}

	solution := make([]byte, unknowns)
	for r := 0; r < unknowns; r++ {
		solution[colOfPivotRow[r]] = rows[r][unknowns]
	}
	return solution, true
}
