// Command hillclimb loads an elevation grid from a file and prints the
// shortest climb distances for both solve modes. Text acquisition and
// output live here; the library packages never touch I/O.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb"
)

var inputPath string

var rootCmd = &cobra.Command{
	Use:   "hillclimb",
	Short: "Shortest-path search over an elevation grid",
	Long: `Reads an elevation grid (rows of 'a'..'z' plus one 'S' and one 'E'),
builds the climb-constrained graph, and prints:

  forward: fewest steps from S to E
  lowest:  fewest steps from any lowest cell to E`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", inputPath, err)
		}
		input := string(data)

		forward, err := hillclimb.ShortestClimb(input)
		if err != nil {
			return err
		}
		fmt.Printf("forward: %d\n", forward)

		lowest, err := hillclimb.ShortestFromLowest(input)
		if errors.Is(err, hillclimb.ErrNoPath) {
			// A walled-off trailhead set is a reportable outcome, not a crash.
			slog.Warn("no lowest cell reaches the end", "input", inputPath)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("lowest:  %d\n", lowest)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the grid file")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("solve failed", "error", err)
		os.Exit(1)
	}
}
