package main

import (
	"context"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/oksasatya/edupath/internal/infrastructure/search"
)

func ensureProfileIndex(ctx context.Context, es *elasticsearch.Client, index string) error {
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return search.NewProfileIndex(es, index).EnsureIndex(c)
}
