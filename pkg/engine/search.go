package engine

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/gambit/pkg/board"
	"github.com/cbodonnell/gambit/pkg/log"
	"github.com/notnil/chess"
	"golang.org/x/sync/errgroup"
)

var errSearchTimeout = errors.New("search timeout")

const (
	maxDepth  = 32
	maxHeight = 64
	infinity  = KingValue + 1
)

type thread struct {
	ctx   context.Context
	nodes int64
}

type rootResult struct {
	move  *chess.Move
	score int
	depth int
}

func search(pos *chess.Position, secondsPerMove float64, threads int) Reply {
	start := time.Now()
	moves := append([]*chess.Move(nil), pos.ValidMoves()...)
	if len(moves) == 0 {
		if pos.Status() == chess.Checkmate {
			return Reply{From: board.NoSquare, To: board.NoSquare, Score: -KingValue, State: StateCheckmate}
		}
		return Reply{From: board.NoSquare, To: board.NoSquare, State: StateStalemate}
	}

	budget := time.Duration(ClampSecondsPerMove(secondsPerMove) * float64(time.Second))
	ctx, cancel := context.WithDeadline(context.Background(), start.Add(budget))
	defer cancel()

	sortMoves(pos, moves)
	best := rootResult{move: moves[0]}
	var nodes int64
	for depth := 1; depth <= maxDepth; depth++ {
		result, n, err := searchRoot(ctx, pos, moves, depth, threads)
		nodes += n
		if err != nil {
			break
		}
		best = result
		moveToFront(moves, result.move)
		if log.Default().Level() >= log.LogLevelTrace {
			log.Trace("Completed depth %d: move %s score %d nodes %d time %v", depth, result.move, result.score, nodes, time.Since(start))
		}
		if len(moves) == 1 || abs(best.score) > KingValueDiv2 {
			break
		}
	}

	return Reply{
		From:     fromChessSquare(best.move.S1()),
		To:       fromChessSquare(best.move.S2()),
		Score:    best.score,
		State:    StatePlaying,
		Distance: mateDistance(best.score),
		Depth:    best.depth,
		Nodes:    nodes,
	}
}

// searchRoot searches every root move to depth, fanning the moves out over
// up to threads goroutines that share the best score found so far as their
// lower bound.
func searchRoot(ctx context.Context, pos *chess.Position, moves []*chess.Move, depth, threads int) (rootResult, int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	var mu sync.Mutex
	best := rootResult{score: -infinity, depth: depth}
	var nodes atomic.Int64

	for _, m := range moves {
		g.Go(func() error {
			mu.Lock()
			alpha := best.score
			mu.Unlock()

			t := &thread{ctx: ctx}
			score, err := t.searchMove(pos.Update(m), alpha, depth)
			nodes.Add(t.nodes)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			if score > best.score {
				best.score = score
				best.move = m
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return rootResult{}, nodes.Load(), err
	}
	return best, nodes.Load(), nil
}

func (t *thread) searchMove(child *chess.Position, alpha, depth int) (score int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				err = errSearchTimeout
				return
			}
			panic(r)
		}
	}()
	return -t.alphaBeta(child, -infinity, -alpha, depth-1, 1), nil
}

func (t *thread) alphaBeta(pos *chess.Position, alpha, beta, depth, height int) int {
	t.incNodes()

	moves := pos.ValidMoves()
	if len(moves) == 0 {
		if pos.Status() == chess.Checkmate {
			return -(KingValue - height + 1)
		}
		return 0
	}
	if depth <= 0 || height >= maxHeight {
		return t.quiescence(pos, alpha, beta, height)
	}

	sortMoves(pos, moves)
	for _, m := range moves {
		score := -t.alphaBeta(pos.Update(m), -beta, -alpha, depth-1, height+1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (t *thread) quiescence(pos *chess.Position, alpha, beta, height int) int {
	t.incNodes()

	standPat := evaluate(pos)
	if height >= maxHeight {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := pos.ValidMoves()
	tactical := make([]*chess.Move, 0, len(moves))
	for _, m := range moves {
		if m.HasTag(chess.Capture) || m.Promo() != chess.NoPieceType {
			tactical = append(tactical, m)
		}
	}
	sortMoves(pos, tactical)
	for _, m := range tactical {
		score := -t.quiescence(pos.Update(m), -beta, -alpha, height+1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (t *thread) incNodes() {
	t.nodes++
	if t.nodes&255 != 0 {
		return
	}
	select {
	case <-t.ctx.Done():
		panic(errSearchTimeout)
	default:
	}
}

// sortMoves orders captures of valuable pieces first, then promotions,
// then checks.
func sortMoves(pos *chess.Position, moves []*chess.Move) {
	b := pos.Board()
	keys := make(map[*chess.Move]int, len(moves))
	for _, m := range moves {
		key := 0
		if m.HasTag(chess.Capture) {
			key += 10000 + 10*pieceValues[b.Piece(m.S2()).Type()] - pieceValues[b.Piece(m.S1()).Type()]/10
		}
		if m.Promo() != chess.NoPieceType {
			key += 5000 + pieceValues[m.Promo()]
		}
		if m.HasTag(chess.Check) {
			key += 1000
		}
		keys[m] = key
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return keys[moves[i]] > keys[moves[j]]
	})
}

func moveToFront(moves []*chess.Move, m *chess.Move) {
	for i := range moves {
		if moves[i] == m {
			copy(moves[1:i+1], moves[:i])
			moves[0] = m
			return
		}
	}
}

// mateDistance converts a mate score into the number of plies to the mate
// plus one, or zero for non-mate scores.
func mateDistance(score int) int {
	if abs(score) <= KingValueDiv2 {
		return 0
	}
	return KingValue - abs(score) + 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
