package services

import (
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

const (
	HitDomain = "domain"
	HitOrder  = "order"
)

// SearchHit is one quick-search result.
type SearchHit struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Label    string `json:"label"`
	Distance int    `json:"distance"`
}

// Search fuzzy-matches q against domain names and order IDs, closest first,
// returning at most limit hits (all when limit <= 0).
func Search(stores *store.Stores, q string, limit int) []SearchHit {
	domains := stores.Domains.List()
	orders := stores.Orders.List()

	labels := make([]string, 0, len(domains)+len(orders))
	hits := make([]SearchHit, 0, cap(labels))
	for _, d := range domains {
		labels = append(labels, d.Domain)
		hits = append(hits, SearchHit{Kind: HitDomain, ID: d.ID, Label: d.Domain})
	}
	for _, o := range orders {
		labels = append(labels, o.ID)
		hits = append(hits, SearchHit{Kind: HitOrder, ID: o.ID, Label: o.ID})
	}

	var out []SearchHit
	for _, m := range listing.RankFuzzy(q, labels) {
		h := hits[m.Index]
		h.Distance = m.Distance
		out = append(out, h)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
