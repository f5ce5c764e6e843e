package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/pokegrid-backend/internal/apperror"
	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
	"github.com/rocketscienceinc/pokegrid-backend/internal/gridgame"
)

const (
	columnWidth = 20
	ruleWidth   = 80
)

// console is the interactive single-player game on stdin/stdout.
type console struct {
	in  *bufio.Scanner
	out io.Writer

	grid      *entity.Grid
	picks     entity.PickRecord
	counter   gridgame.PickCounter
	submitter gridgame.Submitter
}

func newConsole(in io.Reader, out io.Writer, grid *entity.Grid, counter gridgame.PickCounter, submitter gridgame.Submitter) *console {
	return &console{
		in:        bufio.NewScanner(in),
		out:       out,
		grid:      grid,
		picks:     entity.PickRecord{},
		counter:   counter,
		submitter: submitter,
	}
}

// Run reads commands until "quit" or end of input.
func (that *console) Run(ctx context.Context) error {
	that.println("Welcome to Pokemon Grid Game!")
	that.println("\nCommands:")
	that.println("  play - Start playing the grid")
	that.println("  stats - View grid statistics")
	that.println("  score - View current score")
	that.println("  quit - Exit game")

	for {
		command, ok := that.prompt("\n> ")
		if !ok {
			return that.in.Err()
		}

		var err error

		switch strings.ToLower(command) {
		case "quit":
			return nil
		case "stats":
			that.stats()
		case "score":
			err = that.score(ctx)
		case "play":
			err = that.play(ctx)
		default:
			that.println("Unknown command. Try: play, stats, score, or quit")
		}

		if err != nil {
			return err
		}
	}
}

func (that *console) play(ctx context.Context) error {
	if err := that.render(ctx); err != nil {
		return err
	}

	if that.picks.IsComplete() {
		that.println("\nThe grid is complete!")
		return nil
	}

	row, ok := that.promptInt("Enter row (0-2): ")
	if !ok {
		that.println("Invalid input. Please try again.")
		return nil
	}

	col, ok := that.promptInt("Enter col (0-2): ")
	if !ok {
		that.println("Invalid input. Please try again.")
		return nil
	}

	cell := entity.Cell{Row: row, Col: col}
	if !cell.InBounds() {
		that.println("Invalid input. Please try again.")
		return nil
	}

	if !that.submitter.AllowOverwrite && that.picks.IsFilled(cell) {
		that.println("You've already filled this cell!")
		return nil
	}

	pokemon, _ := that.prompt("Enter Pokemon name: ")

	result, err := that.submitter.Submit(ctx, that.grid, that.picks, that.counter, row, col, pokemon)
	switch {
	case err == nil:
		that.printf("✓ Correct! %s is worth %d points\n", result.Pokemon, result.Score)
	case errors.Is(err, apperror.ErrInvalidEntityName):
		valid := gridgame.Stats(that.grid)[row*entity.GridSize+col].Valid
		that.printf("✗ Incorrect. %s doesn't match both categories.\n", result.Pokemon)
		that.printf("Valid options: %s\n", strings.Join(valid, ", "))
	case errors.Is(err, apperror.ErrInvalidCellIndex), errors.Is(err, apperror.ErrCellAlreadyFilled):
		that.println("Invalid input. Please try again.")
	default:
		return fmt.Errorf("failed to submit answer: %w", err)
	}

	return nil
}

func (that *console) render(ctx context.Context) error {
	rule := strings.Repeat("=", ruleWidth)
	that.println("\n" + rule)
	that.println("POKEMON GRID GAME")
	that.println(rule)
	that.println("\nFind a Pokemon that matches both the row and column categories!")
	that.println("Lower score is better (rarer picks = fewer points)\n")

	header := []string{""}
	header = append(header, that.grid.ColLabels()...)
	that.printRow(header)
	that.println(strings.Repeat("-", 4*columnWidth+8))

	counts, err := that.counter.Counts(ctx, that.picks.Pokemon())
	if err != nil {
		return fmt.Errorf("failed to read pick counts: %w", err)
	}

	for row, label := range that.grid.RowLabels() {
		cells := []string{label}
		for col := range entity.GridSize {
			pick, ok := that.picks[entity.Cell{Row: row, Col: col}]
			if !ok {
				cells = append(cells, "[ ? ]")
				continue
			}

			cells = append(cells, fmt.Sprintf("%s (%dpts)", pick.Pokemon, gridgame.ScoreForCount(counts[pick.Pokemon])))
		}

		that.printRow(cells)
	}

	return nil
}

func (that *console) stats() {
	rule := strings.Repeat("=", ruleWidth)
	that.println("\n" + rule)
	that.println("GRID STATISTICS")
	that.println(rule)

	for _, cell := range gridgame.Stats(that.grid) {
		that.printf("\nCell (%d, %d): %d valid Pokemon\n", cell.Cell.Row, cell.Cell.Col, len(cell.Valid))
		that.printf("Row: %s\n", cell.RowLabel)
		that.printf("Col: %s\n", cell.ColLabel)
		that.printf("Valid: %s\n", strings.Join(cell.Valid, ", "))
	}
}

func (that *console) score(ctx context.Context) error {
	total, err := gridgame.TotalScore(ctx, that.picks, that.counter, gridgame.ScoringLive)
	if err != nil {
		return fmt.Errorf("failed to compute score: %w", err)
	}

	that.printf("\nCurrent Score: %d points\n", total)
	that.printf("Picks made: %d/%d\n", len(that.picks), entity.TotalCells)

	return nil
}

func (that *console) prompt(label string) (string, bool) {
	that.printf("%s", label)

	if !that.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

func (that *console) promptInt(label string) (int, bool) {
	text, ok := that.prompt(label)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}

	return n, true
}

func (that *console) printRow(cells []string) {
	padded := make([]string, 0, len(cells))
	for _, c := range cells {
		padded = append(padded, fmt.Sprintf("%-*s", columnWidth, c))
	}

	that.println(strings.Join(padded, " | "))
}

func (that *console) println(line string) {
	fmt.Fprintln(that.out, line)
}

func (that *console) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
