package cli

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/imser/imser"
	"github.com/imser/imser/internal/config"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <documents...>",
	Short: "Pretty print the index built from the documents",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !useMySQL {
			return fmt.Errorf("%w: usage: %s", ErrInvalidArguments, cmd.UseLine())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStorage(cmd, args, func(cfg *config.Config, storage imser.Storage) error {
			engine, err := buildEngine(cfg, storage)
			if err != nil {
				return err
			}
			stored, err := storage.CountDocuments()
			if err != nil {
				return fmt.Errorf("counting documents: %w", err)
			}
			d := newIndexDump(engine.Index())
			d.StoredDocuments = stored
			_, err = pp.Fprintln(cmd.OutOrStdout(), d)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

type termDump struct {
	Term     string
	IDF      float64
	Postings []imser.Posting
}

type indexDump struct {
	StoredDocuments int // 文書ソース側の件数
	Documents       []imser.Document
	Terms           []termDump
}

func newIndexDump(idx *imser.Index) indexDump {
	d := indexDump{
		Documents: idx.Documents(),
		Terms:     make([]termDump, 0),
	}
	for _, term := range idx.Terms() {
		postingList, _ := idx.PostingList(term)
		d.Terms = append(d.Terms, termDump{
			Term:     term,
			IDF:      idx.IDF(term),
			Postings: postingList.Postings,
		})
	}
	return d
}
