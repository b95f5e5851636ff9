package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/imser/imser"
	"github.com/imser/imser/internal/config"
	"github.com/imser/imser/internal/logger"
)

var ErrInvalidArguments = errors.New("invalid arguments")

var (
	configPath    string
	tokenizerName string
	logLevel      string
	useMySQL      bool
	printBody     bool
	rank          bool
)

var rootCmd = &cobra.Command{
	Use:   "imser",
	Short: "A minimal full-text search over the given documents",
	Long: `imser indexes the documents given on the command line (or read from MySQL)
into a positional inverted index and answers a single query against it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&tokenizerName, "tokenizer", "", "tokenizer: whitespace or language-aware")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&useMySQL, "mysql", false, "read documents from MySQL instead of arguments")
	rootCmd.PersistentFlags().BoolVar(&printBody, "body", false, "print document bodies along with ids")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// queryArgs accepts a query followed by at least one document, or only the
// query when documents come from MySQL.
func queryArgs(cmd *cobra.Command, args []string) error {
	want := 2
	if useMySQL {
		want = 1
	}
	if len(args) < want {
		return fmt.Errorf("%w: usage: %s", ErrInvalidArguments, cmd.UseLine())
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if tokenizerName != "" {
		cfg.Analyzer.Tokenizer = tokenizerName
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	return cfg, nil
}

// openStorage returns the document source: MySQL when --mysql is set,
// otherwise the documents given as arguments. The returned func releases it.
var openStorage = func(cfg *config.Config, docs []string) (imser.Storage, func() error, error) {
	if !useMySQL {
		return imser.NewMemoryStorage(imser.NewDocuments(docs...)...), func() error { return nil }, nil
	}
	m := cfg.MySQL
	db, err := imser.NewDBClient(imser.NewDBConfig(m.User, m.Password, m.Addr, m.Port, m.DB))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mysql: %w", err)
	}
	return imser.NewStorageRdbImpl(db), db.Close, nil
}

// withStorage loads the config, opens the document source and runs fn.
func withStorage(cmd *cobra.Command, docs []string, fn func(*config.Config, imser.Storage) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	storage, closeStorage, err := openStorage(cfg, docs)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			slog.Warn("closing storage", "error", err)
		}
	}()
	return fn(cfg, storage)
}

func buildEngine(cfg *config.Config, storage imser.Storage) (*imser.Engine, error) {
	analyzer, err := BuildAnalyzer(cfg.Analyzer)
	if err != nil {
		return nil, err
	}
	engine, err := imser.NewEngineFromStorage(analyzer, storage,
		imser.WithLogger(logger.WithComponent("engine")),
		imser.WithWriterOptions(imser.WithPunctuationPositions(cfg.Index.PunctuationPositions)),
	)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}
	slog.Debug("engine ready", "tokenizer", cfg.Analyzer.Tokenizer, "documents", engine.Index().DocCount())
	return engine, nil
}

// newEngine indexes docs, or every row of MySQL when --mysql is set.
func newEngine(cmd *cobra.Command, docs []string) (*imser.Engine, error) {
	var engine *imser.Engine
	err := withStorage(cmd, docs, func(cfg *config.Config, storage imser.Storage) error {
		var err error
		engine, err = buildEngine(cfg, storage)
		return err
	})
	return engine, err
}

func printDocuments(cmd *cobra.Command, query string, docs []imser.Document) {
	if len(docs) == 0 {
		cmd.PrintErrf("term not found: %s\n", query)
		return
	}
	out := cmd.OutOrStdout()
	for _, doc := range docs {
		if printBody {
			fmt.Fprintf(out, "%d\t%s\n", doc.ID, doc.Body)
			continue
		}
		fmt.Fprintln(out, doc.ID)
	}
}
