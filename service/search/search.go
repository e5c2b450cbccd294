package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/mitchellh/mapstructure"

	catalogService "pirex.GO/service/catalog"
)

var (
	serviceInstance *Service
	serviceOnce     sync.Once
)

// GetService returns singleton Service.
func GetService() *Service {
	serviceOnce.Do(func() {
		serviceInstance = NewService()
	})
	return serviceInstance
}

// Service queries the product search index when Elasticsearch is configured.
// Callers fall back to the in-memory filter engine when Enabled() is false.
type Service struct {
	client *elasticsearch.Client
	index  string
}

func NewService() *Service {
	host := os.Getenv("ELASTICSEARCH_HOST")
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "storefront_items"
	}
	if host == "" {
		return &Service{index: index}
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &Service{index: index}
	}

	return &Service{
		client: client,
		index:  index,
	}
}

// Enabled reports whether a search backend is configured and reachable at
// construction time.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Search runs a multi-field match over the item index, scoped to one
// storefront, and maps hits back to normalized products.
func (s *Service) Search(ctx context.Context, owner, query string, size int) ([]catalogService.Product, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}
	if size <= 0 {
		size = 20
	}

	body := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":  query,
							"fields": []string{"item_name^3", "category^2", "description"},
						},
					},
				},
				"filter": []map[string]interface{}{
					{"term": map[string]interface{}{"user_id": owner}},
				},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	products := make([]catalogService.Product, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		p, err := hitToProduct(hit.Source)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// hitToProduct decodes an index document into a Product via mapstructure,
// then applies the same image/glyph resolution as the loader.
func hitToProduct(source map[string]interface{}) (catalogService.Product, error) {
	var p catalogService.Product
	cfg := &mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return p, err
	}
	if err := dec.Decode(source); err != nil {
		return p, err
	}
	if p.Name == "" {
		p.Name = catalogService.DefaultName
	}
	if p.Category == "" {
		p.Category = catalogService.DefaultCategory
	}
	if p.Description == "" {
		p.Description = catalogService.DefaultDescription
	}
	if imageID, ok := source["image_id"].(string); ok {
		p.ImageURL = catalogService.ImageURL(imageID)
	}
	p.Glyph = catalogService.CategoryGlyph(p.Category)
	return p, nil
}
