package category

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mhulst/bonscan/internal/merchant"
)

func newTestSuggester(t *testing.T) *Suggester {
	t.Helper()
	reg, err := merchant.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	return NewSuggester(reg, DefaultWeights(), nil)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		recent []string
		opts   Options
		want   []string
	}{
		{
			name:  "brand alias and keyword compound",
			title: "Albert Heijn boodschappen",
			want:  []string{"Food"},
		},
		{
			name:  "tied categories follow the priority order",
			title: "tanken en boodschappen onderweg",
			want:  []string{"Food", "Transport"},
		},
		{
			name:  "literal category name",
			title: "terugbetaling Health",
			want:  []string{"Health"},
		},
		{
			name:   "recency only",
			title:  "qqq",
			recent: []string{"Transport", "Transport", "Leisure"},
			want:   []string{"Transport", "Leisure"},
		},
		{
			name:  "nothing scores falls back to priority order",
			title: "qqq",
			want:  []string{"Food", "Shopping", "Transport"},
		},
		{
			name:  "restricted active set",
			title: "hotel parkeren",
			opts:  Options{Categories: []string{"Transport", "Travel"}},
			want:  []string{"Transport", "Travel"},
		},
		{
			name:   "recency outside the active set is ignored",
			title:  "qqq",
			recent: []string{"Food"},
			opts:   Options{Categories: []string{"Transport", "Travel"}},
			want:   []string{"Transport", "Travel"},
		},
		{
			name:  "top n cap",
			title: "tanken en boodschappen onderweg",
			opts:  Options{TopN: 1},
			want:  []string{"Food"},
		},
	}
	s := newTestSuggester(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Suggest(tt.title, tt.recent, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggest(%q) mismatch (-want +got):\n%s", tt.title, diff)
			}
		})
	}
}

func TestSuggestDeterministic(t *testing.T) {
	s := newTestSuggester(t)
	title := "AH tanken en boodschappen"
	first := s.Suggest(title, []string{"Leisure"}, Options{})
	for i := 0; i < 5; i++ {
		again := s.Suggest(title, []string{"Leisure"}, Options{})
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestSuggestIndexReuse(t *testing.T) {
	s := newTestSuggester(t)
	s.Suggest("boodschappen", nil, Options{})
	idx := s.idx
	s.Suggest("tanken", nil, Options{})
	if s.idx != idx {
		t.Error("index rebuilt although the active set did not change")
	}
	s.Suggest("tanken", nil, Options{Categories: []string{"Transport"}})
	if s.idx == idx {
		t.Error("index not rebuilt for a changed active set")
	}
}
