package resources

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/larklabs/hvacjack/internal/search"
)

// Per-category result caps.
const (
	maxVideos   = 3
	maxManuals  = 3
	maxParts    = 3
	maxTraining = 2
)

// searchResultCount is how many organic hits each category query requests
// before filtering.
const searchResultCount = 10

// Bundle holds the categorized reference links for one piece of equipment.
type Bundle struct {
	ServiceVideos []search.Result `json:"service_videos"`
	Manuals       []search.Result `json:"manuals"`
	Parts         []search.Result `json:"parts"`
	Training      []search.Result `json:"training"`
}

// Empty reports whether no category yielded any result.
func (b *Bundle) Empty() bool {
	return len(b.ServiceVideos) == 0 && len(b.Manuals) == 0 &&
		len(b.Parts) == 0 && len(b.Training) == 0
}

// category describes one of the four independent resource searches.
type category struct {
	label  string
	suffix string
	cap    int
	keep   func(url, manufacturer string) bool

	// rankOfficial floats official-domain and PDF hits to the front
	// before capping.
	rankOfficial bool
}

var categories = []category{
	{label: "Service Videos", suffix: "service repair video", cap: maxVideos, keep: keepVideo},
	{label: "Manuals & Documentation", suffix: "service manual pdf", cap: maxManuals, keep: keepManual, rankOfficial: true},
	{label: "Parts Suppliers", suffix: "replacement parts", cap: maxParts, keep: keepParts},
	{label: "Training Resources", suffix: "hvac training", cap: maxTraining, keep: keepTraining},
}

// Augmenter enriches nameplate analyses with categorized reference links.
type Augmenter struct {
	searcher search.Searcher
	logger   *slog.Logger
	budget   time.Duration
}

// NewAugmenter creates an augmenter. Budget bounds the whole augmentation;
// zero means 10 seconds.
func NewAugmenter(searcher search.Searcher, logger *slog.Logger, budget time.Duration) *Augmenter {
	if logger == nil {
		logger = slog.Default()
	}
	if budget <= 0 {
		budget = 10 * time.Second
	}
	return &Augmenter{searcher: searcher, logger: logger, budget: budget}
}

// Lookup runs the four category searches for a query. Individual search
// failures degrade to an empty category; the bundle's Empty method tells
// callers whether anything at all was found. The manufacturer is the first
// word of the query and drives the official-domain checks.
func (a *Augmenter) Lookup(ctx context.Context, query string) *Bundle {
	ctx, cancel := context.WithTimeout(ctx, a.budget)
	defer cancel()

	manufacturer, _, _ := strings.Cut(query, " ")

	lists := make([][]search.Result, len(categories))
	var wg sync.WaitGroup
	for i, cat := range categories {
		wg.Add(1)
		go func(i int, cat category) {
			defer wg.Done()
			results, err := a.searcher.Search(ctx, query+" "+cat.suffix, searchResultCount)
			if err != nil {
				a.logger.Warn("resource search failed",
					"category", cat.label,
					"query", query,
					"error", err)
				return
			}
			lists[i] = filterCategory(results, cat, manufacturer)
		}(i, cat)
	}
	wg.Wait()

	return &Bundle{
		ServiceVideos: lists[0],
		Manuals:       lists[1],
		Parts:         lists[2],
		Training:      lists[3],
	}
}

// Augment returns the formatted resource block for a query, or ok=false when
// no category produced a result and the caller should keep the analysis text
// unchanged.
func (a *Augmenter) Augment(ctx context.Context, query string) (string, bool) {
	bundle := a.Lookup(ctx, query)
	if bundle.Empty() {
		return "", false
	}
	return FormatBundle(bundle), true
}

// filterCategory applies the category's URL filter, dedups by URL, ranks
// manuals (official sites first, then PDFs), and caps the list.
func filterCategory(results []search.Result, cat category, manufacturer string) []search.Result {
	seen := make(map[string]bool)
	var kept []search.Result
	for _, r := range results {
		key := canonicalURL(r.URL)
		if seen[key] || !cat.keep(r.URL, manufacturer) {
			continue
		}
		seen[key] = true
		kept = append(kept, r)
	}

	if cat.rankOfficial {
		sort.SliceStable(kept, func(i, j int) bool {
			oi, oj := IsOfficialSite(kept[i].URL, manufacturer), IsOfficialSite(kept[j].URL, manufacturer)
			if oi != oj {
				return oi
			}
			pi, pj := IsPDF(kept[i].URL), IsPDF(kept[j].URL)
			return pi && !pj
		})
	}

	if len(kept) > cat.cap {
		kept = kept[:cat.cap]
	}
	return kept
}

func canonicalURL(url string) string {
	lower := strings.ToLower(url)
	lower = strings.TrimPrefix(lower, "https://")
	lower = strings.TrimPrefix(lower, "http://")
	return strings.TrimSuffix(lower, "/")
}

// FormatBundle renders a bundle as the text block appended to analyses.
// Empty categories are omitted.
func FormatBundle(b *Bundle) string {
	var sb strings.Builder
	sb.WriteString("=== ADDITIONAL RESOURCES ===\n")

	sections := []struct {
		label   string
		results []search.Result
	}{
		{"Service Videos", b.ServiceVideos},
		{"Manuals & Documentation", b.Manuals},
		{"Parts Suppliers", b.Parts},
		{"Training Resources", b.Training},
	}
	for _, sec := range sections {
		if len(sec.results) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s:\n", sec.label)
		for _, r := range sec.results {
			title := r.Title
			if title == "" {
				title = r.URL
			}
			fmt.Fprintf(&sb, "- %s: %s\n", title, r.URL)
		}
	}
	return sb.String()
}
