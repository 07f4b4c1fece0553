// Command perft counts move-generation leaf nodes for a position and can
// check every root move against an independent generator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/fatih/color"
	"github.com/mway1/chess"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("perft: ")

	fen := flag.String("fen", getenv("PERFT_FEN", chess.StartFEN), "FEN string (defaults to initial position)")
	depth := flag.Int("depth", getenvInt("PERFT_DEPTH", 0), "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	verify := flag.Bool("verify", false, "compare each root move against dragontoothmg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parse FEN: %v", err)
	}

	if *divide || *verify {
		if !runDivide(board, *depth, *verify) {
			os.Exit(1)
		}
		return
	}

	start := time.Now()
	nodes := chess.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("%d \t%d \t%s \t%.0f nps\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}

// runDivide prints the divide table and reports whether every count
// matched the oracle (always true without verify).
func runDivide(board chess.Board, depth int, verify bool) bool {
	ours := chess.PerftDivide(board, depth)
	var theirs map[string]uint64
	if verify {
		theirs = oracleDivide(board.FEN(), depth)
	}

	keys := make([]string, 0, len(ours)+len(theirs))
	for k := range ours {
		keys = append(keys, k)
	}
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	bad := color.New(color.FgRed, color.Bold)
	good := color.New(color.FgGreen)

	ok := true
	var sum uint64
	for _, k := range keys {
		n, mine := ours[k]
		sum += n
		if !verify {
			fmt.Printf("%s: %d\n", k, n)
			continue
		}
		want, known := theirs[k]
		switch {
		case !mine:
			ok = false
			bad.Printf("%s: missing (oracle %d)\n", k, want)
		case !known:
			ok = false
			bad.Printf("%s: %d (not legal for oracle)\n", k, n)
		case n != want:
			ok = false
			bad.Printf("%s: %d (oracle %d)\n", k, n, want)
		default:
			fmt.Printf("%s: %d\n", k, n)
		}
	}
	if ok {
		good.Printf("Total: %d\n", sum)
	} else {
		bad.Printf("Total: %d\n", sum)
	}
	return ok
}

func oracleDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	div := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		div[m.String()] = oraclePerft(&b, depth-1)
		unapply()
	}
	return div
}

func oraclePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
