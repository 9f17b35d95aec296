// Package eval implements the static position evaluator (C1): tapered
// midgame/endgame material plus piece-square tables plus a passed-pawn
// bonus, in the style of the published PeSTo evaluation function.
package eval

// MateValue is the sentinel magnitude for a forced mate. Scores at or
// above this magnitude denote "mate in N", with larger values meaning a
// sooner mate; they must propagate through negation unchanged.
const MateValue = 99999999

// MateThreshold is the magnitude past which a score is treated as a mate
// score rather than a material/positional score, for ply adjustment.
const MateThreshold = 90000000

// QueenValue is the PeSTo midgame queen value, the same figure as
// pieceValueMG[Queen]. Quiescence delta pruning in the search package
// does not read it; it uses its own 1050 margin (bigDelta).
const QueenValue = 1025

// pieceValueMG and pieceValueEG are the PeSTo midgame/endgame material
// values in centipawns, indexed by board.PieceType.
var pieceValueMG = [6]int{82, 337, 365, 477, 1025, 0}
var pieceValueEG = [6]int{94, 281, 297, 512, 936, 0}

// phaseWeight is the game-phase contribution of each non-king, non-pawn
// piece type still on the board.
var phaseWeight = [6]int{0, 1, 1, 2, 4, 0}

// MaxPhase is the phase value representing a full midgame (all 4 minor
// pieces, both rooks, both queens for each side, clamped).
const MaxPhase = 24
