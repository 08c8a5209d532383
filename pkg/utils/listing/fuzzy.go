package listing

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a fuzzy search hit: the index into the searched labels and its
// edit distance.
type Match struct {
	Index    int
	Label    string
	Distance int
}

// RankFuzzy ranks labels against q, closest first. Labels that do not contain
// the query characters in order are dropped.
func RankFuzzy(q string, labels []string) []Match {
	if q == "" {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labels)
	sort.Sort(ranks)
	out := make([]Match, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, Match{Index: r.OriginalIndex, Label: r.Target, Distance: r.Distance})
	}
	return out
}
