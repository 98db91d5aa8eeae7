package rules

const (
	// DeathCauseWallCollision is when the snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseAdversaryCollision is when the snake runs into an adversary
	DeathCauseAdversaryCollision = "adversary-collision"
	// DeathCauseBoardFull is when the snake has filled the board and there is
	// nowhere left to put food
	DeathCauseBoardFull = "board-full"
	// DeathCauseAbandoned is when a running game is replaced by a reset or a
	// resize before it ended
	DeathCauseAbandoned = "abandoned"
)
