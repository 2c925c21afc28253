/*
Package catalog provides full-text search over the destination catalog.

The storefront's destination pages are indexed with Bleve so the search box
can match on names, countries, and free-text summaries rather than exact
strings. The index is rebuilt from the seed catalog at startup; it is a
derived structure, never the source of truth.
*/
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/index/scorch"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Destination is one searchable destination page.
type Destination struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Region  string   `json:"region"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

// Hit is one search result with its relevance score.
type Hit struct {
	ID      string
	Name    string
	Country string
	Summary string
	Score   float64
}

// Index is the destination search index.
type Index struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewMemIndex creates an in-memory index for fast startup.
func NewMemIndex() (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Index{bleveIndex: index}, nil
}

// NewDiskIndex creates or opens a persistent index with the Scorch backend.
func NewDiskIndex(indexPath string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	index, err := bleve.NewUsing(indexPath, buildIndexMapping(), scorch.Name, scorch.Name, nil)
	if err != nil {
		// If index exists, open it
		index, err = bleve.Open(indexPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open/create index: %w", err)
		}
	}

	return &Index{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve index mapping for destinations.
func buildIndexMapping() mapping.IndexMapping {
	destMapping := bleve.NewDocumentMapping()

	for _, field := range []string{"name", "country", "region", "summary", "tags"} {
		destMapping.AddFieldMappingsAt(field, bleve.NewTextFieldMapping())
	}

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", destMapping)

	return indexMapping
}

// Add indexes the given destinations, replacing existing entries by ID.
func (i *Index) Add(destinations []Destination) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, dest := range destinations {
		doc := map[string]interface{}{
			"name":    dest.Name,
			"country": dest.Country,
			"region":  dest.Region,
			"summary": dest.Summary,
			"tags":    dest.Tags,
		}

		if err := batch.Index(dest.ID, doc); err != nil {
			return fmt.Errorf("failed to index destination %s: %w", dest.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index destinations: %w", err)
	}

	return nil
}

// Search runs a match query and returns up to limit scored hits.
func (i *Index) Search(queryText string, limit int) ([]Hit, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(queryText)
	request := bleve.NewSearchRequestOptions(matchQuery, limit, 0, false)
	request.Fields = []string{"name", "country", "summary"}

	results, err := i.bleveIndex.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(results.Hits))
	for _, hit := range results.Hits {
		h := Hit{ID: hit.ID, Score: hit.Score}
		if name, ok := hit.Fields["name"].(string); ok {
			h.Name = name
		}
		if country, ok := hit.Fields["country"].(string); ok {
			h.Country = country
		}
		if summary, ok := hit.Fields["summary"].(string); ok {
			h.Summary = summary
		}
		hits = append(hits, h)
	}

	return hits, nil
}

// Count returns the number of indexed destinations.
func (i *Index) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return count, nil
}

// Close closes the index and releases resources.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}
