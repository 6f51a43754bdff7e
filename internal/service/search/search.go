package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/agrolink/farm_market/internal/models"
)

// Search runs a fuzzy multi-match over the crop index.
func Search(ctx context.Context, es *elasticsearch.Client, index, q string, from, size int) (int64, []models.Crop, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name", "description", "location", "category"},
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
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Crop `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	crops := make([]models.Crop, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		crops[i] = hit.Source
	}
	return r.Hits.Total.Value, crops, nil
}

func IndexCrop(ctx context.Context, es *elasticsearch.Client, index string, crop *models.Crop) error {
	data, err := json.Marshal(crop)
	if err != nil {
		return fmt.Errorf("index crop: %w", err)
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(strconv.FormatUint(uint64(crop.ID), 10)),
	)
	if err != nil {
		return fmt.Errorf("index crop: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index crop: %s", res.Status())
	}
	return nil
}

func DeleteCrop(ctx context.Context, es *elasticsearch.Client, index string, id uint) error {
	res, err := es.Delete(
		index,
		strconv.FormatUint(uint64(id), 10),
		es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	defer res.Body.Close()
	// 404 from the index just means the crop was never indexed
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete crop: %s", res.Status())
	}
	return nil
}
