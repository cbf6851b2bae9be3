package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/solver"
)

var (
	puzzleStr  string
	puzzleFile string
	watch      bool
	interval   int
	timeout    time.Duration
	profiling  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle given by flag, file, or interactive input",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&puzzleStr, "puzzle", "p", "", "puzzle as 81 characters")
	solveCmd.Flags().StringVarP(&puzzleFile, "file", "f", "", "read the puzzle from a file")
	solveCmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the grid while searching")
	solveCmd.Flags().IntVar(&interval, "interval", 1000, "steps between progress reports")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the search after this long")
	solveCmd.Flags().BoolVar(&profiling, "profile", false, "write a CPU profile to the working directory")
	rootCmd.AddCommand(solveCmd)
}

// gridPrinter redraws the partial grid on every progress report.
type gridPrinter struct{}

func (gridPrinter) Progress(steps int, g domain.Grid) {
	fmt.Printf("step %d\n%s\n", steps, g.Pretty())
}

func readPuzzle() (string, error) {
	if puzzleStr != "" {
		return puzzleStr, nil
	}
	if puzzleFile != "" {
		b, err := os.ReadFile(puzzleFile)
		if err != nil {
			return "", fmt.Errorf("read puzzle: %w", err)
		}
		return string(b), nil
	}
	fmt.Println("Enter the puzzle, nine rows of nine characters (0 or . for blanks):")
	sc := bufio.NewScanner(os.Stdin)
	var sb strings.Builder
	for i := 0; i < 9 && sc.Scan(); i++ {
		sb.WriteString(strings.TrimSpace(sc.Text()))
		sb.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read puzzle: %w", err)
	}
	return sb.String(), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	puzzle, err := readPuzzle()
	if err != nil {
		return err
	}
	eng, err := solver.New(puzzle)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	var opts []solver.Option
	if watch {
		opts = append(opts, solver.WithProgress(gridPrinter{}, interval))
	}
	out, stats, err := eng.Solve(ctx, opts...)
	if err != nil {
		return err
	}
	if out == nil {
		slog.Info("search exhausted", "steps", stats.Steps, "dur", stats.Duration.Round(time.Millisecond))
		fmt.Println("No solution exists.")
		return nil
	}
	slog.Info("solved", "steps", stats.Steps, "dur", stats.Duration.Round(time.Millisecond))
	fmt.Print(out.Pretty())
	return nil
}
