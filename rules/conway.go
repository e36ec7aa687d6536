package rules

/*
AliveNext applies Conway's Game of Life rules to determine the next state of a cell.

A cell is alive in the next generation when it has exactly 3 live neighbors (birth
or survival), or when it is already alive with exactly 2 live neighbors. Every other
neighbor count kills the cell or leaves it dead.
*/
func AliveNext(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// NextState is AliveNext over byte-encoded cells, returning 1 for alive and 0 for dead.
func NextState(cell uint8, neighbors int) uint8 {
	if AliveNext(cell != 0, neighbors) {
		return 1
	}
	return 0
}
