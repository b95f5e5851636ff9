package cli

import (
	"fmt"

	"github.com/imser/imser"
	"github.com/imser/imser/internal/config"
)

// BuildAnalyzer assembles char filters, tokenizer and token filters from cfg.
// Char filters run mapping first, then NFKC normalization.
func BuildAnalyzer(cfg config.AnalyzerConfig) (imser.Analyzer, error) {
	charFilters := make([]imser.CharFilter, 0)
	if len(cfg.Mappings) > 0 {
		charFilters = append(charFilters, imser.NewMappingCharFilter(cfg.Mappings))
	}
	if cfg.Normalize {
		charFilters = append(charFilters, imser.NewNormalizeCharFilter())
	}

	tokenizeType, err := imser.ParseTokenizeType(cfg.Tokenizer)
	if err != nil {
		return imser.Analyzer{}, err
	}
	tokenizer, err := imser.NewTokenizer(tokenizeType)
	if err != nil {
		return imser.Analyzer{}, fmt.Errorf("creating %s tokenizer: %w", tokenizeType, err)
	}

	tokenFilters := make([]imser.TokenFilter, 0)
	switch cfg.ReadingForm {
	case "":
	case "kana":
		tokenFilters = append(tokenFilters, imser.NewKanaReadingformFilter())
	case "romaji":
		tokenFilters = append(tokenFilters, imser.NewRomajiReadingformFilter())
	default:
		return imser.Analyzer{}, fmt.Errorf("unknown reading form %q", cfg.ReadingForm)
	}
	if cfg.Lowercase {
		tokenFilters = append(tokenFilters, imser.NewLowercaseFilter())
	}
	if len(cfg.StopWords) > 0 {
		tokenFilters = append(tokenFilters, imser.NewStopWordFilter(cfg.StopWords))
	}
	if cfg.Stemming {
		tokenFilters = append(tokenFilters, imser.NewStemmerFilter())
	}
	return imser.NewAnalyzer(charFilters, tokenizer, tokenFilters), nil
}
