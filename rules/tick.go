package rules

import (
	log "github.com/sirupsen/logrus"
)

// Tick advances the game by one step. It returns a *GameOverError when the
// snake dies or fills the board; once the game is over every further call
// returns the same error until the game is reset.
func (gs *GameState) Tick() error {
	if gs.over != nil {
		return gs.over
	}
	gs.turn++

	// 1. move the head
	gs.heading = gs.pending
	head := gs.snake[0].Move(gs.heading)

	// 2. check for death before anything else changes
	if cause := checkForDeath(gs.width, gs.height, head, gs.snake, gs.adversaries); cause != "" {
		return gs.end(cause, nil)
	}
	gs.snake = append([]Cell{head}, gs.snake...)

	// 3. eat or shrink
	if gs.food != nil && head.Equal(*gs.food) {
		gs.baseScore++
		gs.weighted += gs.speed
		log.WithFields(log.Fields{
			"GameID": gs.id,
			"Turn":   gs.turn,
			"Food":   head,
		}).Debug("snake ate")

		food, err := getUnoccupiedCell(gs.rng, gs.width, gs.height, occupiedCells(gs.snake, nil, gs.adversaries))
		if err != nil {
			gs.food = nil
			return gs.end(DeathCauseBoardFull, err)
		}
		gs.food = &food
	} else {
		gs.snake = gs.snake[:len(gs.snake)-1]
	}

	// 4. adversary spawn cadence
	gs.elapsed += IntervalForSpeed(gs.speed)
	if gs.elapsed >= AdversarySpawnInterval {
		gs.elapsed = 0
		gs.spawnAdversary()
	}

	// 5. adversaries roam
	gs.moveAdversaries()
	return nil
}

func (gs *GameState) end(cause string, err error) error {
	gs.over = &GameOverError{
		Score:     gs.Score(),
		BaseScore: gs.baseScore,
		Turn:      gs.turn,
		Cause:     cause,
		Err:       err,
	}
	log.WithFields(log.Fields{
		"GameID": gs.id,
		"Turn":   gs.turn,
		"Cause":  cause,
		"Score":  gs.over.Score,
	}).Info("game over")
	return gs.over
}

func (gs *GameState) spawnAdversary() {
	c, err := getUnoccupiedCell(gs.rng, gs.width, gs.height, occupiedCells(gs.snake, gs.food, gs.adversaries))
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"GameID": gs.id,
			"Turn":   gs.turn,
		}).Warn("no room to spawn adversary")
		return
	}
	a := Adversary{Cell: c, Direction: randomDirection(gs.rng)}
	gs.adversaries = append(gs.adversaries, a)
	log.WithFields(log.Fields{
		"GameID":    gs.id,
		"Turn":      gs.turn,
		"Adversary": a.Cell,
		"Direction": a.Direction,
	}).Debug("adversary spawned")
}

func (gs *GameState) moveAdversaries() {
	for i := range gs.adversaries {
		a := &gs.adversaries[i]
		next := a.Cell.Move(a.Direction)
		if adversaryBlocked(gs.width, gs.height, next, i, gs.snake, gs.adversaries) {
			a.Direction = randomDirection(gs.rng)
			continue
		}
		a.Cell = next
	}
}
