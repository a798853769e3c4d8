package search

import (
	"sort"

	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
)

// TopK is the number of results returned by a search.
const TopK = 8

// Rank orders results by descending score and keeps the first TopK.
// Equal scores keep their scoring order; there is no secondary key.
func Rank(scored []result.Result) []result.Result {
	ranked := make([]result.Result, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})

	if len(ranked) > TopK {
		ranked = ranked[:TopK]
	}
	return ranked
}
