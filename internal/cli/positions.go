package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/imser/imser"
)

var positionsCmd = &cobra.Command{
	Use:   "positions <term> <documents...>",
	Short: "Show the word positions of a term in each document",
	Args:  queryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, args[1:])
		if err != nil {
			return err
		}
		positions := engine.Positions(args[0])
		if len(positions) == 0 {
			cmd.PrintErrf("term not found: %s\n", args[0])
			return nil
		}
		ids := make([]imser.DocumentID, 0, len(positions))
		for id := range positions {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %v\n", id, positions[id])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}
