package mouse

// Nearest returns the member of set closest to target. Ties go to the
// lower value. An empty set returns target unchanged.
func Nearest(set []int, target int) int {
	if len(set) == 0 {
		return target
	}

	best := set[0]
	for _, v := range set[1:] {
		d, bd := distance(v, target), distance(best, target)
		if d < bd || (d == bd && v < best) {
			best = v
		}
	}
	return best
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
