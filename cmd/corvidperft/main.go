// Command corvidperft runs a perft correctness/speed check against a FEN
// position, optionally breaking the root down move by move (-divide) or
// profiling the run (-cpuprofile).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/corvidchess/corvid/attack"
	"github.com/corvidchess/corvid/fen"
	"github.com/corvidchess/corvid/internal/perft"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/render"
)

func main() {
	depth := flag.Int("depth", 1, "perft depth")
	fenStr := flag.String("fen", fen.Default, "FEN of the root position")
	divide := flag.Bool("divide", false, "break the root down by move, printing each move's subtree count")
	verbose := flag.Bool("verbose", false, "print a move-kind breakdown (captures, checks, ...) alongside the node count")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	attack.InitTables()
	position.InitZobristKeys()

	p := fen.Parse(*fenStr)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("root position:\n%s", render.ASCII(p))

	start := time.Now()

	switch {
	case *divide:
		results := perft.Divide(&p, *depth)
		moves := make([]string, 0, len(results))
		for m := range results {
			moves = append(moves, m)
		}
		sort.Strings(moves)

		total := 0
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, results[m])
			total += results[m]
		}
		fmt.Printf("\nmoves: %d\ntotal nodes: %d\n", len(moves), total)

	case *verbose:
		c := perft.CountsAt(&p, *depth)
		fmt.Printf("nodes: %d\ncaptures: %d\nen passant: %d\ncastles: %d\npromotions: %d\nchecks: %d\ncheckmates: %d\n",
			c.Nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, c.Checks, c.Checkmates)

	default:
		nodes := perft.Perft(&p, *depth)
		fmt.Printf("nodes: %d\n", nodes)
	}

	log.Printf("elapsed: %s", time.Since(start))
}
