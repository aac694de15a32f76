package gridworld

// DefaultSize is the dimension of the default navigation map
const DefaultSize = 20

// DefaultObstacles returns the obstacle layout of the default 20x20
// navigation map: a staggered series of horizontal walls with narrow
// gaps, plus a scattering of single obstacle cells
func DefaultObstacles() []Position {
	var obstacles []Position

	// Horizontal walls, one per odd row
	obstacles = append(obstacles, wall(1, 0, 9)...)
	obstacles = append(obstacles, wall(3, 2, 11)...)
	obstacles = append(obstacles, wall(5, 0, 4)...)
	obstacles = append(obstacles, wall(5, 12, 16)...)
	obstacles = append(obstacles, wall(7, 6, 15)...)
	obstacles = append(obstacles, wall(9, 1, 4)...)
	obstacles = append(obstacles, wall(9, 17, 19)...)
	obstacles = append(obstacles, wall(11, 5, 13)...)
	obstacles = append(obstacles, wall(13, 0, 2)...)
	obstacles = append(obstacles, wall(13, 14, 19)...)
	obstacles = append(obstacles, wall(15, 3, 12)...)
	obstacles = append(obstacles, wall(17, 1, 2)...)
	obstacles = append(obstacles, wall(17, 13, 18)...)
	obstacles = append(obstacles, wall(19, 4, 13)...)

	// Scattered single cells
	obstacles = append(obstacles,
		Position{2, 15}, Position{4, 18}, Position{6, 5}, Position{8, 17},
		Position{10, 7}, Position{12, 3}, Position{14, 9}, Position{16, 19},
		Position{18, 0}, Position{18, 8},
	)

	return obstacles
}

// wall returns the cells of a horizontal wall on row spanning columns
// first through last inclusive
func wall(row, first, last int) []Position {
	cells := make([]Position, 0, last-first+1)
	for col := first; col <= last; col++ {
		cells = append(cells, Position{row, col})
	}
	return cells
}
