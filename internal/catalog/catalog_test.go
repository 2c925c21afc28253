package catalog

import "testing"

func newSeededIndex(t *testing.T) *Index {
	t.Helper()

	index, err := NewMemIndex()
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	t.Cleanup(func() { index.Close() })

	if err := index.Add(Seed()); err != nil {
		t.Fatalf("failed to index seed catalog: %v", err)
	}

	return index
}

func TestIndex_CountMatchesSeed(t *testing.T) {
	index := newSeededIndex(t)

	count, err := index.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if int(count) != len(Seed()) {
		t.Errorf("expected %d indexed destinations, got %d", len(Seed()), count)
	}
}

func TestIndex_SearchBySummary(t *testing.T) {
	index := newSeededIndex(t)

	hits, err := index.Search("temples", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected hits for temples")
	}

	found := false
	for _, hit := range hits {
		if hit.ID == "kyoto" {
			found = true
		}
		if hit.Score <= 0 {
			t.Errorf("expected positive score, got %v for %s", hit.Score, hit.ID)
		}
	}
	if !found {
		t.Errorf("expected kyoto among temple hits, got %+v", hits)
	}
}

func TestIndex_SearchByName(t *testing.T) {
	index := newSeededIndex(t)

	hits, err := index.Search("lisbon", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) == 0 || hits[0].ID != "lisbon" {
		t.Errorf("expected lisbon as top hit, got %+v", hits)
	}
	if hits[0].Country != "Portugal" {
		t.Errorf("expected stored country field, got %q", hits[0].Country)
	}
}

func TestIndex_SearchNoMatch(t *testing.T) {
	index := newSeededIndex(t)

	hits, err := index.Search("zzzzzzz", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("expected no hits, got %+v", hits)
	}
}

func TestIndex_SearchLimit(t *testing.T) {
	index := newSeededIndex(t)

	// "japan" matches several destinations by country.
	hits, err := index.Search("japan", 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) > 2 {
		t.Errorf("expected at most 2 hits, got %d", len(hits))
	}
}
