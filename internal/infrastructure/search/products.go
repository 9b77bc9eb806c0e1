package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// ProductsIndex mirrors created products into Elasticsearch for name search.
// Indexing is best-effort: the relational store stays the source of truth
// and a failed index write never fails the originating request.
type ProductsIndex struct {
	client *elasticsearch.Client
	index  string
	logger *logrus.Logger
}

func NewProductsIndex(client *elasticsearch.Client, index string, logger *logrus.Logger) *ProductsIndex {
	return &ProductsIndex{client: client, index: index, logger: logger}
}

type Hit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (i *ProductsIndex) IndexProduct(ctx context.Context, p *entity.Product) {
	if i.client == nil || i.index == "" {
		return
	}
	doc := map[string]any{
		"id":         p.ID,
		"store_id":   p.StoreID,
		"name":       p.Name,
		"price":      p.Price.String(),
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: i.index, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.client)
	if err != nil {
		i.logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		i.logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
}

// SearchByName runs a match query on product names within one store.
func (i *ProductsIndex) SearchByName(ctx context.Context, storeID, q string) ([]Hit, error) {
	if i.client == nil || i.index == "" {
		return []Hit{}, nil
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must":   map[string]any{"match": map[string]any{"name": q}},
				"filter": map[string]any{"term": map[string]any{"store_id": storeID}},
			},
		},
		"size": 20,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := i.client.Search(
		i.client.Search.WithContext(c),
		i.client.Search.WithIndex(i.index),
		i.client.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string `json:"_id"`
				Source struct {
					Name string `json:"name"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hits = append(hits, Hit{ID: h.ID, Name: h.Source.Name})
	}
	return hits, nil
}
