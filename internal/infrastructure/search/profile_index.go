package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/pkg/helpers"
)

const mapping = `{
  "mappings": {
    "properties": {
      "id":         {"type": "long"},
      "user_id":    {"type": "long"},
      "name":       {"type": "text"},
      "skills":     {"type": "text"},
      "interests":  {"type": "text"},
      "summary":    {"type": "text"},
      "created_at": {"type": "date"}
    }
  }
}`

// ProfileIndex indexes submitted profiles for per-user history search.
type ProfileIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewProfileIndex(es *elasticsearch.Client, index string) *ProfileIndex {
	return &ProfileIndex{es: es, index: index}
}

// EnsureIndex creates the index mapping on first use.
func (x *ProfileIndex) EnsureIndex(ctx context.Context) error {
	return helpers.ESEnsureIndex(ctx, x.es, x.index, mapping)
}

type profileDoc struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

func (x *ProfileIndex) Index(ctx context.Context, p *entity.Profile) error {
	b, err := json.Marshal(profileDoc{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Skills:    p.Skills,
		Interests: p.Interests,
		Summary:   p.Summary,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      x.index,
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index profile %d: %s", p.ID, res.Status())
	}
	return nil
}

// Search returns matching profile ids of one user, best match first.
func (x *ProfileIndex) Search(ctx context.Context, userID int64, query string, limit int) ([]int64, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	b, err := json.Marshal(searchQuery(userID, query, limit))
	if err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search profiles: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source profileDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, nil
}

func searchQuery(userID int64, query string, size int) map[string]any {
	return map[string]any{
		"size": size,
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{
					map[string]any{"term": map[string]any{"user_id": userID}},
				},
				"must": []any{
					map[string]any{"multi_match": map[string]any{
						"query":  query,
						"fields": []string{"name^2", "skills^2", "interests", "summary"},
					}},
				},
			},
		},
	}
}
