package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"foodhub-be/internal/catalog"
)

// IndexRestaurants writes the mock catalog into the search index so the
// fuzzy search path has data to serve. Called once at startup.
func IndexRestaurants(ctx context.Context, es *elasticsearch.Client, index string, restaurants []catalog.Restaurant) error {
	for _, r := range restaurants {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(r); err != nil {
			return fmt.Errorf("search: encode restaurant %s: %w", r.ID, err)
		}
		res, err := es.Index(index, &buf,
			es.Index.WithContext(ctx),
			es.Index.WithDocumentID(r.ID),
		)
		if err != nil {
			return fmt.Errorf("search: index restaurant %s: %w", r.ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("search: index restaurant %s: %s", r.ID, res.Status())
		}
	}
	return nil
}

// Search runs a fuzzy multi_match over restaurant names, cuisines and
// descriptions.
func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []catalog.Restaurant, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "cuisine", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", strings.TrimSpace(res.Status()))
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source catalog.Restaurant `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	out := make([]catalog.Restaurant, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		out[i] = hit.Source
	}
	return r.Hits.Total.Value, out, nil
}
