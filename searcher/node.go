package searcher

import (
	"connect4/game"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// node is a position in the MCTS tree. player is the piece whose move produced board.
type node struct {
	board    game.Board
	player   game.Piece
	action   game.Action
	won      bool
	parent   *node
	children []*node
	untried  []game.Action
	rewards  float64 // from the searching player's perspective
	visits   int
}

func newNode(parent *node, board game.Board, player game.Piece, action game.Action) *node {
	n := &node{
		board:  board,
		player: player,
		action: action,
		won:    game.HasConnected(board, player),
		parent: parent,
	}
	if !n.won { // No moves after a win
		n.untried = board.LegalActions()
	}
	return n
}

func (n *node) isExpandable() bool {
	return len(n.untried) > 0
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// expand plays a random untried column for the next player and returns the new child.
func (n *node) expand(rng *rand.Rand) *node {
	i := rng.Intn(len(n.untried))
	action := n.untried[i]
	player := n.player.Opponent()
	board, err := n.board.Play(action, player)
	if err != nil {
		panic(fmt.Sprintf("untried column %d is not playable: %v", action, err))
	}

	child := newNode(n, board, player, action)
	n.children = append(n.children, child)
	n.untried = slices.Delete(n.untried, i, i+1)
	return child
}

// selectChild picks the child maximizing UCB1 for the player choosing among the children.
// perspective is the searching player, whose rewards are stored in every node.
func (n *node) selectChild(c float64, perspective game.Piece) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	policy := newUCT(c, float64(n.visits))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		q := child.rewards
		if child.player != perspective {
			q = -q
		}
		if score := policy.evaluate(q, float64(child.visits)); score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// backup records the result of an iteration and returns the parent.
func (n *node) backup(reward float64) *node {
	n.visits++
	n.rewards += reward
	return n.parent
}

// findBestAction returns an immediately winning child if there is one, otherwise the child with
// the highest average reward.
func (n *node) findBestAction() game.Action {
	best := game.NoAction
	maxValue := math.Inf(-1)
	for _, child := range n.children {
		if child.won {
			return child.action
		}
		if child.visits == 0 {
			continue
		}
		if v := child.rewards / float64(child.visits); v > maxValue {
			maxValue = v
			best = child.action
		}
	}
	return best
}

// rollout plays uniformly random moves from the node's position and returns the winner, or
// game.Empty for a draw.
func rollout(n *node, rng *rand.Rand) game.Piece {
	if n.won {
		return n.player
	}

	board := n.board
	player := n.player
	var buf [game.Cols]game.Action
	for {
		actions := board.AppendLegalActions(buf[:0])
		if len(actions) == 0 {
			return game.Empty
		}
		player = player.Opponent()
		if err := board.Apply(actions[rng.Intn(len(actions))], player); err != nil {
			panic(fmt.Sprintf("legal column is not playable: %v", err))
		}
		if game.HasConnected(board, player) {
			return player
		}
	}
}

func computeReward(winner, player game.Piece) float64 {
	switch winner {
	case player:
		return WIN
	case game.Empty:
		return DRAW
	default:
		return LOSS
	}
}
