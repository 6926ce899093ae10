// sanboard replays SAN movetext against an authoritative chess board,
// resolving each token to a legal move and reporting the final
// position. It contains no chess logic of its own: tokens are stripped
// of move-number prefixes and fed to the engine one at a time.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lwhite/sanboard-go/internal/chess"
	"github.com/lwhite/sanboard-go/internal/engine"
	sberrors "github.com/lwhite/sanboard-go/internal/errors"
	"github.com/lwhite/sanboard-go/internal/parser"
)

var (
	startFEN = flag.String("fen", "", "starting position as FEN (default: standard initial position)")
	verbose  = flag.Bool("v", false, "print the board after every move")
	strict   = flag.Bool("strict", false, "warn when a check/mate suffix disagrees with the computed status")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	opts := options{
		verbose: *verbose,
		strict:  *strict,
		out:     os.Stdout,
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		if err := replayInput(os.Stdin, "<stdin>", opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	failed := false
	for _, name := range inputs {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
			continue
		}
		if err := replayInput(f, name, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
		f.Close()
	}
	if failed {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: sanboard [flags] [movetext-file ...]\n")
	fmt.Fprintf(os.Stderr, "Reads whitespace-delimited SAN movetext from the files or stdin.\n\n")
	flag.PrintDefaults()
}

// options configures a movetext replay.
type options struct {
	verbose bool
	strict  bool
	out     io.Writer
}

// replayInput builds the starting board for one input and replays it.
func replayInput(r io.Reader, name string, opts options) error {
	board := chess.NewInitialBoard()
	if *startFEN != "" {
		var err error
		board, err = engine.NewBoardFromFEN(*startFEN)
		if err != nil {
			return err
		}
	}
	return replayMovetext(r, name, board, opts)
}

// replayMovetext feeds movetext tokens to the engine and prints the
// final position. Move-number prefixes are stripped, empty tokens and
// game-result markers are skipped.
func replayMovetext(r io.Reader, name string, board *chess.Board, opts options) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	status := engine.Status(board)
	ply := 0
	for scanner.Scan() {
		tok := parser.StripMoveNumber(scanner.Text())
		if tok == "" || parser.IsResultToken(tok) {
			continue
		}
		ply++

		var err error
		status, err = engine.MoveSAN(board, tok)
		if err != nil {
			var me *sberrors.MoveError
			if errors.As(err, &me) {
				me.Ply = ply
			}
			return fmt.Errorf("%s: %w", name, err)
		}

		if opts.strict {
			if desc, perr := parser.Parse(tok); perr == nil && !engine.SuffixMatches(desc.Suffix, status) {
				fmt.Fprintf(opts.out, "%s: ply %d %q: suffix disagrees with computed status %s\n",
					name, ply, tok, status)
			}
		}
		if opts.verbose {
			fmt.Fprintf(opts.out, "%d. %s (%s)\n%s\n", ply, tok, status, board)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	fmt.Fprintf(opts.out, "%s: %s (%s)\n", name, engine.BoardToFEN(board), status)
	return nil
}
