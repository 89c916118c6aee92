package movegen

import (
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/position"
)

// Stage names one step of the staged move-generation pipeline.
type Stage int

const (
	StageBestMove Stage = iota
	StageCapture
	StageKillerMove
	StageQuietMove
	StageDone
)

// Generator walks a position's pseudo-legal moves in the order search wants
// to try them: the transposition-table best move first (if any), then
// captures (MVV-LVA + SEE ordered, via move.List.Push's insertion sort),
// then the two killer moves (quiet moves that caused a beta cutoff at this
// ply in a sibling search), then the remaining quiet moves. A move already
// returned at an earlier stage is skipped if it would otherwise recur.
//
// Generation is lazy: captures are generated only once the Capture stage
// is entered, and quiets only once the QuietMove stage is entered, so a
// cutoff found among the captures (or even among the killers, which are
// validated structurally rather than by membership in a generated quiet
// list) never pays for quiet-move generation at all.
//
// A Generator is single-use: construct one per node, call Next until it
// returns ok=false, then discard it.
type Generator struct {
	stage        Stage
	pos          *position.Position
	best         move.Move
	hasBest      bool
	captures     move.List
	quiets       move.List
	killers      move.KillerSlots
	killerIdx    int
	maxStageSeen Stage
}

// NewGenerator creates a Generator for p. best is the move to try first
// (typically the transposition-table entry's move, or move.Null for none).
// killers are the two killer moves recorded for the current search ply.
func NewGenerator(p *position.Position, best move.Move, killers move.KillerSlots) *Generator {
	g := &Generator{pos: p, killers: killers}
	if !best.IsNull() {
		g.best = best
		g.hasBest = true
	} else {
		g.stage = StageCapture
	}
	return g
}

// Next returns the next move in staged order, or (move.Null, false) once
// every pseudo-legal move has been produced. Callers are responsible for
// checking each returned move's safety (own king left in check) after
// making it; the pipeline only structurally validates and orders
// pseudo-legal moves, it does not simulate them.
func (g *Generator) Next() (move.Move, bool) {
	for {
		debugAssert(g.stage >= g.maxStageSeen, "Generator.Next: stage moved backward")
		if g.stage > g.maxStageSeen {
			g.maxStageSeen = g.stage
		}

		switch g.stage {
		case StageBestMove:
			g.stage = StageCapture
			if IsLegalMove(g.pos, g.best) {
				return g.best, true
			}
			continue

		case StageCapture:
			if !g.captures.Generated {
				GenCaptures(g.pos, &g.captures)
			}
			m, ok := g.captures.Next()
			if !ok {
				g.stage = StageKillerMove
				continue
			}
			if g.hasBest && m == g.best {
				continue
			}
			return m, true

		case StageKillerMove:
			if g.killerIdx >= len(g.killers) {
				g.stage = StageQuietMove
				continue
			}
			k := g.killers[g.killerIdx]
			g.killerIdx++
			if k.IsNull() || k.IsCapture() || (g.hasBest && k == g.best) || !IsLegalMove(g.pos, k) {
				continue
			}
			return k, true

		case StageQuietMove:
			if !g.quiets.Generated {
				GenQuiets(g.pos, &g.quiets)
			}
			m, ok := g.quiets.Next()
			if !ok {
				g.stage = StageDone
				continue
			}
			if (g.hasBest && m == g.best) || killersContain(g.killers, m) {
				continue
			}
			return m, true

		default:
			return move.Null, false
		}
	}
}

func killersContain(k move.KillerSlots, m move.Move) bool {
	return k[0] == m || k[1] == m
}

// NextCapture enters the Capture stage directly, skipping BestMove,
// KillerMove and QuietMove entirely, and returns p's pseudo-legal captures
// best first, pruning the instant the next capture's score falls below
// GoodCaptureScore. This is quiescence search's entry point into the
// staged pipeline: it never explores a capture SEE judges a loser, and
// with a fresh (or Reset) captures list it generates on first call and
// never touches quiet moves at all.
func NextCapture(p *position.Position, captures *move.List) (move.Move, bool) {
	if !captures.Generated {
		GenCaptures(p, captures)
	}
	score, ok := captures.PeekScore()
	if !ok || score < GoodCaptureScore {
		return move.Null, false
	}
	return captures.Next()
}
