package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/phrazzld/armoury-api/internal/domain/deck"
	"github.com/spf13/cobra"
)

func armouryCmd(opts *rootOptions) *cobra.Command {
	var (
		division string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "armoury",
		Short: "Print the packs of a division grouped by slot category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			div, err := catalog.GetDivision(cmd.Context(), division)
			if err != nil {
				return fmt.Errorf("division %s: %w", division, err)
			}
			units, err := catalog.GetUnitMap(cmd.Context())
			if err != nil {
				return err
			}

			armoury := deck.NewBuilder(div, units, deck.PolicyAdvisory).Armoury()
			for _, p := range armoury.Unresolved {
				opts.logger.Warn("pack unit not in catalog",
					"pack", p.PackDescriptor,
					"unit", p.UnitDescriptor)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(armoury)
			}
			return printArmoury(cmd.OutOrStdout(), armoury)
		},
	}

	cmd.Flags().StringVar(&division, "division", "", "division descriptor")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the armoury as JSON")
	_ = cmd.MarkFlagRequired("division")
	return cmd
}

// printArmoury writes one block per category with the unit count of each
// pack at every veterancy level.
func printArmoury(out io.Writer, armoury deck.Armoury) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range armoury.Categories {
		fmt.Fprintf(w, "%s\t(%d slots)\n", c.Slots.Category, c.Slots.MaxSlots)
		for _, p := range c.Packs {
			counts := make([]string, len(p.Quantities))
			for i, q := range p.Quantities {
				counts[i] = fmt.Sprint(deck.UnitCount(q))
			}
			fmt.Fprintf(w, "  %s\t%s\tx%d\t[%s]\n",
				p.Pack.PackDescriptor, p.Unit.Name, p.Pack.NumberOfCards, strings.Join(counts, " "))
		}
	}
	if n := len(armoury.Unresolved); n > 0 {
		fmt.Fprintf(w, "unresolved packs\t%d\n", n)
	}
	return w.Flush()
}
