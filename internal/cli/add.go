package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imser/imser"
	"github.com/imser/imser/internal/config"
)

var addCmd = &cobra.Command{
	Use:   "add --mysql <documents...>",
	Short: "Insert documents into the MySQL document source",
	Long: `Inserts each argument as a row of the documents table and prints the id
assigned by the table. The index is not persisted; later queries with --mysql
rebuild it from the table.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if !useMySQL {
			return fmt.Errorf("%w: add requires --mysql", ErrInvalidArguments)
		}
		if len(args) == 0 {
			return fmt.Errorf("%w: usage: %s", ErrInvalidArguments, cmd.UseLine())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStorage(cmd, nil, func(_ *config.Config, storage imser.Storage) error {
			for _, body := range args {
				id, err := storage.AddDocument(imser.NewDocument(body))
				if err != nil {
					return fmt.Errorf("adding document: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
