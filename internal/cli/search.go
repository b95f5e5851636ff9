package cli

import (
	"github.com/spf13/cobra"

	"github.com/imser/imser"
)

var searchCmd = &cobra.Command{
	Use:   "search <term> <documents...>",
	Short: "Rank documents containing a term by tf-idf",
	Args:  queryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd, args[1:])
		if err != nil {
			return err
		}
		printDocuments(cmd, args[0], engine.SearchTerm(args[0]))
		return nil
	},
}

var andCmd = &cobra.Command{
	Use:   "and <query> <documents...>",
	Short: "List documents containing every term of the query",
	Args:  queryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, func(a imser.Analyzer) imser.Query {
			return imser.NewMatchQuery(args[0], imser.AND, a)
		})
	},
}

var orCmd = &cobra.Command{
	Use:   "or <query> <documents...>",
	Short: "List documents containing any term of the query",
	Args:  queryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, func(a imser.Analyzer) imser.Query {
			return imser.NewMatchQuery(args[0], imser.OR, a)
		})
	},
}

var phraseCmd = &cobra.Command{
	Use:   "phrase <query> <documents...>",
	Short: "List documents containing the query terms side by side",
	Args:  queryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, func(a imser.Analyzer) imser.Query {
			return imser.NewPhraseQuery(args[0], a)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{andCmd, orCmd, phraseCmd} {
		cmd.Flags().BoolVar(&rank, "rank", false, "order results by tf-idf instead of document id")
	}
	rootCmd.AddCommand(searchCmd, andCmd, orCmd, phraseCmd)
}

func runQuery(cmd *cobra.Command, args []string, newQuery func(imser.Analyzer) imser.Query) error {
	engine, err := newEngine(cmd, args[1:])
	if err != nil {
		return err
	}
	var sorter imser.Sorter
	if rank {
		sorter = imser.NewTfIdfSorter()
	}
	printDocuments(cmd, args[0], engine.Search(newQuery(engine.Analyzer()), sorter))
	return nil
}
