package eval

import "github.com/negamaxchess/chesscore/internal/board"

// PassedPawnMask[c][sq] is the set of squares a pawn of the opposing
// color must be clear of (its own file and the two adjacent files,
// strictly ahead) for the pawn of color c on sq to be passed.
var PassedPawnMask [2][64]board.Bitboard

func init() {
	for sq := 0; sq < 64; sq++ {
		file := board.Square(sq).File()
		rank := board.Square(sq).Rank()

		loFile, hiFile := file-1, file+1
		if loFile < 0 {
			loFile = 0
		}
		if hiFile > 7 {
			hiFile = 7
		}
		fileSpan := board.Bitboard(0)
		for f := loFile; f <= hiFile; f++ {
			fileSpan |= board.FileMask[f]
		}

		var ahead, behind board.Bitboard
		for r := 0; r < 8; r++ {
			if r > rank {
				ahead |= board.RankMask[r]
			}
			if r < rank {
				behind |= board.RankMask[r]
			}
		}

		PassedPawnMask[board.White][sq] = fileSpan & ahead
		PassedPawnMask[board.Black][sq] = fileSpan & behind
	}
}
