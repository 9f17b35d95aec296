package engine

import (
	"sort"

	"github.com/negamaxchess/chesscore/internal/board"
)

// MaxPly bounds the killer-move table; search never recurses deeper
// than this from the root.
const MaxPly = 128

// victimValue is the MVV table: pawn 1, knight 3, bishop 3, rook 5,
// queen 9, king unused. There is deliberately no attacker component
// (LVA) — captures tie-break in legal-move-generation order.
var victimValue = [6]int{1, 3, 3, 5, 9, 0}

// MoveOrderer holds the per-search-instance killer and history tables
// used to order moves at each node (C2).
type MoveOrderer struct {
	killers [MaxPly][2]board.Move
	history [2][64][64]int
}

// NewMoveOrderer creates an orderer with empty tables.
func NewMoveOrderer() *MoveOrderer {
	return &MoveOrderer{}
}

// ResetKillers clears the killer table for a new choose_move call.
func (mo *MoveOrderer) ResetKillers() {
	for i := range mo.killers {
		mo.killers[i][0] = board.NoMove
		mo.killers[i][1] = board.NoMove
	}
}

// DecayHistory halves every history entry, called once per choose_move
// call so old-game history doesn't dominate forever.
func (mo *MoveOrderer) DecayHistory() {
	for c := range mo.history {
		for f := range mo.history[c] {
			for t := range mo.history[c][f] {
				mo.history[c][f][t] /= 2
			}
		}
	}
}

// Killers returns the two killer moves recorded at ply.
func (mo *MoveOrderer) Killers(ply int) (board.Move, board.Move) {
	return mo.killers[ply][0], mo.killers[ply][1]
}

// UpdateKillers records m as the newest killer at ply, shifting the
// previous slot-0 killer down. No-op if m is already slot 0.
func (mo *MoveOrderer) UpdateKillers(ply int, m board.Move) {
	if mo.killers[ply][0] == m {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = m
}

// UpdateHistory rewards a quiet move that produced a beta cutoff.
func (mo *MoveOrderer) UpdateHistory(turn board.Color, m board.Move, depthRemaining int) {
	reward := depthRemaining * depthRemaining
	mo.history[turn][m.From()][m.To()] += reward
}

// orderedMove pairs a move with its ordering key.
type orderedMove struct {
	move  board.Move
	score int
}

// OrderMoves produces legal moves in C2's order: the TT move first (if
// present), then captures by victim value descending, then the two
// killers (if legal, not the TT move, not a capture), then remaining
// quiets by history descending.
func (mo *MoveOrderer) OrderMoves(pos *board.Position, legal *board.MoveList, ttMove board.Move, ply int) []board.Move {
	k0, k1 := mo.Killers(ply)
	turn := pos.Turn()

	ordered := make([]board.Move, 0, legal.Len())
	var captures []orderedMove
	var killers []orderedMove
	var quiets []orderedMove

	haveTT := false
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m == ttMove {
			haveTT = true
			continue
		}
		if m.IsCapture(pos) {
			captures = append(captures, orderedMove{m, captureValue(pos, m)})
			continue
		}
		if m == k0 {
			killers = append(killers, orderedMove{m, 2})
			continue
		}
		if m == k1 {
			killers = append(killers, orderedMove{m, 1})
			continue
		}
		quiets = append(quiets, orderedMove{m, mo.history[turn][m.From()][m.To()]})
	}

	if haveTT {
		ordered = append(ordered, ttMove)
	}

	sort.SliceStable(captures, func(i, j int) bool { return captures[i].score > captures[j].score })
	sort.SliceStable(killers, func(i, j int) bool { return killers[i].score > killers[j].score })
	sort.SliceStable(quiets, func(i, j int) bool { return quiets[i].score > quiets[j].score })

	for _, om := range captures {
		ordered = append(ordered, om.move)
	}
	for _, om := range killers {
		ordered = append(ordered, om.move)
	}
	for _, om := range quiets {
		ordered = append(ordered, om.move)
	}

	return ordered
}

// captureValue returns the victim value for MVV sorting; en passant
// has no piece on the destination square, so it defaults to a pawn.
func captureValue(pos *board.Position, m board.Move) int {
	if m.IsEnPassant() {
		return victimValue[board.Pawn]
	}
	victim := pos.PieceAt(m.To())
	if victim == board.NoPiece {
		return 1
	}
	return victimValue[victim.Type()]
}
