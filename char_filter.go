package imser

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CharFilter rewrites text before tokenization. Token offsets refer to the
// filtered text.
type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	mapper map[string]string // key->valueにマッピングする
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	return &MappingCharFilter{mapper: mapper}
}

func (c *MappingCharFilter) Filter(s string) string {
	if len(c.mapper) == 0 {
		return s
	}
	// 長いキーから順に置換して結果を決定的にする
	keys := make([]string, 0, len(c.mapper))
	for k := range c.mapper {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, c.mapper[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// NormalizeCharFilter applies Unicode NFKC, folding full-width alphanumerics
// and half-width katakana to their canonical forms.
type NormalizeCharFilter struct{}

func NewNormalizeCharFilter() *NormalizeCharFilter {
	return &NormalizeCharFilter{}
}

func (c *NormalizeCharFilter) Filter(s string) string {
	return norm.NFKC.String(s)
}
