package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns [id]",
	Short: "List built-in patterns or print one",
	Long: `Without arguments, lists every pattern in the catalog. With an id,
prints that pattern's cells.

Examples:
  life patterns
  life patterns pulsar`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPatterns,
}

func runPatterns(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		p, err := registry.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%dx%d, %d cells)\n\n", p.Name, p.Width, p.Height, len(p.Cells))
		fmt.Print(patternGrid(p))
		return nil
	}

	patterns := registry.List()
	if len(patterns) == 0 {
		fmt.Println("No patterns available.")
		return nil
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range patterns {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Cells", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, p := range patterns {
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxIDLen, p.ID, size, p.Cells, p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'life play --pattern <id>' to watch one.")
	return nil
}

// patternGrid renders p on a universe exactly its own size.
func patternGrid(p life.Pattern) string {
	u := life.NewEmpty(p.Width, p.Height)
	u.InsertPattern(p, p.Height/2, p.Width/2)
	return u.String()
}
