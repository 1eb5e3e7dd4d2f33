package agent

import (
	"connect4/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	name string
	rng  *rand.Rand
}

// NewRandom returns an agent playing uniformly among the non-full columns.
func NewRandom(name string, seed uint64) Agent {
	return &randomAgent{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return a.name
}

func (a *randomAgent) GenerateMove(board game.Board, player game.Piece, saved SavedState) (game.Action, SavedState, error) {
	actions := board.LegalActions()
	if len(actions) == 0 {
		return game.NoAction, saved, game.ErrNoLegalMoves
	}
	return actions[a.rng.Intn(len(actions))], saved, nil
}
