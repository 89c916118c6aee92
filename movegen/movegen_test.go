package movegen

import (
	"testing"

	"github.com/corvidchess/corvid/attack"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	attack.InitTables()
	position.InitZobristKeys()
	m.Run()
}

// startPosition builds the standard chess starting position without going
// through package fen, keeping this package's tests independent of it.
func startPosition() position.Position {
	p := position.Empty()
	back := [8]types.PieceKind{
		types.Rook, types.Knight, types.Bishop, types.Queen,
		types.King, types.Bishop, types.Knight, types.Rook,
	}
	for file := 0; file < 8; file++ {
		p.PlacePiece(types.MakePiece(back[file], types.White), file)
		p.PlacePiece(types.MakePiece(types.Pawn, types.White), 8+file)
		p.PlacePiece(types.MakePiece(types.Pawn, types.Black), 48+file)
		p.PlacePiece(types.MakePiece(back[file], types.Black), 56+file)
	}
	p.ActiveColor = types.White
	p.CastlingRights = types.CastlingWhiteKing | types.CastlingWhiteQueen |
		types.CastlingBlackKing | types.CastlingBlackQueen
	p.Hash ^= position.CastlingKey(p.CastlingRights)
	return p
}

func perft(p *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	g := position.NewGame(*p)
	var nodes int
	for _, m := range GenLegalMoves(p) {
		MakeMove(g, m)
		nodes += perft(g.Current(), depth-1)
		UndoMove(g)
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	p := startPosition()
	assert.Equal(t, 20, perft(&p, 1))
	assert.Equal(t, 400, perft(&p, 2))
	assert.Equal(t, 8902, perft(&p, 3))
}

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	p := startPosition()
	g := position.NewGame(p)

	MakeMove(g, move.New(types.E2, types.E4, move.DoublePawnPush))
	UndoMove(g)

	if diff := cmp.Diff(p, *g.Current()); diff != "" {
		t.Fatalf("position after make+unmake differs from original (-want +got):\n%s", diff)
	}
}

func TestMakeMoveUpdatesHashIncrementally(t *testing.T) {
	p := startPosition()
	g := position.NewGame(p)
	MakeMove(g, move.New(types.E2, types.E4, move.DoublePawnPush))
	assert.Equal(t, position.ComputeHash(g.Current()), g.Current().Hash)
}

func TestCastlingRightsLostOnKingMove(t *testing.T) {
	p := startPosition()
	// Clear F1 so the king is free to step there.
	p.RemovePiece(types.PieceWBishop, types.F1)
	g := position.NewGame(p)

	MakeMove(g, move.New(types.E1, types.F1, move.Quiet))
	assert.Equal(t, types.CastlingRights(0), g.Current().CastlingRights&(types.CastlingWhiteKing|types.CastlingWhiteQueen))
}

func TestGenCastlesKingSide(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.E1)
	p.PlacePiece(types.PieceWRook, types.H1)
	p.PlacePiece(types.PieceBKing, types.E8)
	p.CastlingRights = types.CastlingWhiteKing

	var captures, quiets move.List
	Generate(&p, &captures, &quiets)

	found := false
	for i := 0; i < quiets.Length; i++ {
		if quiets.Moves[i].M == move.New(types.E1, types.G1, move.KingCastle) {
			found = true
		}
	}
	assert.True(t, found, "expected O-O to be generated with a clear path and no attackers")
}

func TestGenCastlesBlockedByAttackedSquare(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.E1)
	p.PlacePiece(types.PieceWRook, types.H1)
	p.PlacePiece(types.PieceBKing, types.E8)
	p.PlacePiece(types.PieceBRook, types.F8) // attacks F1, on the king's path
	p.CastlingRights = types.CastlingWhiteKing

	var captures, quiets move.List
	Generate(&p, &captures, &quiets)

	for i := 0; i < quiets.Length; i++ {
		assert.NotEqual(t, move.New(types.E1, types.G1, move.KingCastle), quiets.Moves[i].M)
	}
}

func TestMVVLVAOrdersPawnTakesQueenFirst(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWPawn, types.D4)
	p.PlacePiece(types.PieceWKnight, types.A1)
	p.PlacePiece(types.PieceBQueen, types.E5)
	p.PlacePiece(types.PieceBPawn, types.B3)
	p.PlacePiece(types.PieceWKing, types.A8)
	p.PlacePiece(types.PieceBKing, types.H8)
	p.CastlingRights = 0

	var captures, quiets move.List
	Generate(&p, &captures, &quiets)
	require.Greater(t, captures.Length, 0)

	best, ok := captures.Next()
	require.True(t, ok)
	assert.Equal(t, types.D4, best.From())
	assert.Equal(t, types.E5, best.To(), "pawn-takes-queen must be scored ahead of knight-takes-pawn")
}

func TestSEERecognizesLosingCapture(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWQueen, types.D1)
	p.PlacePiece(types.PieceBPawn, types.D5)
	p.PlacePiece(types.PieceBRook, types.D8)
	p.PlacePiece(types.PieceWKing, types.A1)
	p.PlacePiece(types.PieceBKing, types.H8)

	m := move.New(types.D1, types.D5, move.Capture)
	assert.Less(t, SEE(&p, m), 0, "queen takes pawn defended by a rook behind it should lose material")
}

func TestSEERecognizesWinningCapture(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWPawn, types.E4)
	p.PlacePiece(types.PieceBQueen, types.D5)
	p.PlacePiece(types.PieceWKing, types.A1)
	p.PlacePiece(types.PieceBKing, types.H8)

	m := move.New(types.E4, types.D5, move.Capture)
	assert.Greater(t, SEE(&p, m), 0, "undefended pawn takes queen should gain material")
}

func TestMoveToCANAndBack(t *testing.T) {
	p := startPosition()
	m := move.New(types.E2, types.E4, move.DoublePawnPush)
	s := MoveToCAN(m)
	assert.Equal(t, "e2e4", s)

	parsed, err := MoveFromCAN(s, &p)
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestMoveToSANCastle(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.E1)
	p.PlacePiece(types.PieceWRook, types.H1)
	p.CastlingRights = types.CastlingWhiteKing

	m := move.New(types.E1, types.G1, move.KingCastle)
	assert.Equal(t, "O-O", MoveToSAN(m, &p, GenLegalMoves(&p), false, false))
}

func TestMoveToSANDisambiguatesByFile(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.A1)
	p.PlacePiece(types.PieceBKing, types.H8)
	p.PlacePiece(types.PieceWRook, types.A4)
	p.PlacePiece(types.PieceWRook, types.H4)

	legal := GenLegalMoves(&p)
	m := move.New(types.A4, types.D4, move.Quiet)
	san := MoveToSAN(m, &p, legal, false, false)
	assert.Equal(t, "Rad4", san)
}

func TestIsSafeMoveRejectsMoveIntoCheck(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.E1)
	p.PlacePiece(types.PieceBRook, types.E8)
	p.PlacePiece(types.PieceBKing, types.H8)

	pinned := move.New(types.E1, types.E2, move.Quiet)
	assert.False(t, IsSafeMove(&p, pinned), "king stepping forward while still on the rook's file stays in check")

	escape := move.New(types.E1, types.F2, move.Quiet)
	assert.True(t, IsSafeMove(&p, escape))
}

func TestIsLegalMoveRejectsNullMove(t *testing.T) {
	p := startPosition()
	assert.False(t, IsLegalMove(&p, move.Null))
}

func TestIsLegalMoveRejectsEmptyOrigin(t *testing.T) {
	p := startPosition()
	stale := move.New(types.E4, types.E5, move.Quiet)
	assert.False(t, IsLegalMove(&p, stale), "e4 is empty in the starting position")
}

func TestIsLegalMoveRejectsWrongColorPiece(t *testing.T) {
	p := startPosition()
	m := move.New(types.E7, types.E5, move.DoublePawnPush)
	assert.False(t, IsLegalMove(&p, m), "white to move cannot push a black pawn")
}

func TestIsLegalMoveRejectsKindMismatch(t *testing.T) {
	p := startPosition()
	m := move.New(types.B1, types.C3, move.Capture)
	assert.False(t, IsLegalMove(&p, m), "c3 is empty, so this cannot be a capture")
}

func TestIsLegalMoveAcceptsPseudoLegalQuiet(t *testing.T) {
	p := startPosition()
	m := move.New(types.G1, types.F3, move.Quiet)
	assert.True(t, IsLegalMove(&p, m))
}

func TestIsLegalMoveRejectsBadEnPassantTarget(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.A1)
	p.PlacePiece(types.PieceBKing, types.H8)
	p.PlacePiece(types.PieceWPawn, types.E5)
	p.PlacePiece(types.PieceBPawn, types.D5)
	p.EPTarget = types.OutOfBoard

	m := move.New(types.E5, types.D6, move.EnPassant)
	assert.False(t, IsLegalMove(&p, m), "no en-passant target recorded")
}

func TestIsLegalMoveAcceptsGenuineEnPassant(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.A1)
	p.PlacePiece(types.PieceBKing, types.H8)
	p.PlacePiece(types.PieceWPawn, types.E5)
	p.PlacePiece(types.PieceBPawn, types.D5)
	p.EPTarget = types.D6

	m := move.New(types.E5, types.D6, move.EnPassant)
	assert.True(t, IsLegalMove(&p, m))
}

func TestIsLegalMoveRejectsCastleWithoutRights(t *testing.T) {
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.E1)
	p.PlacePiece(types.PieceWRook, types.H1)
	p.PlacePiece(types.PieceBKing, types.H8)
	p.CastlingRights = 0

	m := move.New(types.E1, types.G1, move.KingCastle)
	assert.False(t, IsLegalMove(&p, m))
}

func TestMoveToSANAutoMarksCheckmate(t *testing.T) {
	// White king boxed in on H1 by its own pawns; Qa1-e1 is a back-rank mate.
	p := position.Empty()
	p.PlacePiece(types.PieceWKing, types.H1)
	p.PlacePiece(types.PieceWPawn, types.F2)
	p.PlacePiece(types.PieceWPawn, types.G2)
	p.PlacePiece(types.PieceWPawn, types.H2)
	p.PlacePiece(types.PieceBKing, types.A8)
	p.PlacePiece(types.PieceBQueen, types.A1)
	p.ActiveColor = types.Black

	legal := GenLegalMoves(&p)
	m := move.New(types.A1, types.E1, move.Quiet)
	san := MoveToSANAuto(m, &p, legal)
	assert.Equal(t, "Qe1#", san)
}

func TestMoveFromCANRejectsUnknownMove(t *testing.T) {
	p := startPosition()
	_, err := MoveFromCAN("e2e5", &p)
	assert.Error(t, err)
}
