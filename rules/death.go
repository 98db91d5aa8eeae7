package rules

// checkForDeath looks at the candidate head position and returns the cause of
// death, or an empty string when the move is safe. Possible causes are wall
// collision, snake body collision and adversary collision, checked in that
// order.
func checkForDeath(width, height int, head Cell, snake []Cell, adversaries []Adversary) string {
	if deathByOutOfBounds(head, width, height) {
		return DeathCauseWallCollision
	}
	for _, b := range snake {
		if deathByBodyCollision(head, b) {
			return DeathCauseSnakeSelfCollision
		}
	}
	for _, a := range adversaries {
		if a.Cell.Equal(head) {
			return DeathCauseAdversaryCollision
		}
	}
	return ""
}

func deathByBodyCollision(head, body Cell) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Cell, width, height int) bool {
	return (head.X < 0) || (head.X >= width) || (head.Y < 0) || (head.Y >= height)
}

// adversaryBlocked reports whether the adversary at index i can't step onto
// next. Food never blocks an adversary.
func adversaryBlocked(width, height int, next Cell, i int, snake []Cell, adversaries []Adversary) bool {
	if deathByOutOfBounds(next, width, height) {
		return true
	}
	for _, b := range snake {
		if b.Equal(next) {
			return true
		}
	}
	for j, other := range adversaries {
		if j != i && other.Cell.Equal(next) {
			return true
		}
	}
	return false
}
