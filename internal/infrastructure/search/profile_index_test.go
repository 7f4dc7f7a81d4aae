package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/edupath/internal/domain/entity"
)

func newFakeES(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es
}

func TestSearchFiltersByUser(t *testing.T) {
	var body map[string]any
	es := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profiles/_search", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		_, _ = io.WriteString(w, `{"hits":{"hits":[{"_source":{"id":5}},{"_source":{"id":2}}]}}`)
	})

	ids, err := NewProfileIndex(es, "profiles").Search(context.Background(), 7, "python", 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 2}, ids)

	assert.EqualValues(t, 10, body["size"])
	filter := body["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]any)
	assert.EqualValues(t, 7, filter[0].(map[string]any)["term"].(map[string]any)["user_id"])
}

func TestIndexUsesProfileID(t *testing.T) {
	var doc profileDoc
	var path string
	es := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &doc))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	})

	p := &entity.Profile{ID: 11, UserID: 3, Name: "Asha", Skills: "Python, SQL", CreatedAt: time.Now()}
	require.NoError(t, NewProfileIndex(es, "profiles").Index(context.Background(), p))
	assert.Equal(t, "/profiles/_doc/11", path)
	assert.Equal(t, int64(3), doc.UserID)
	assert.Equal(t, "Python, SQL", doc.Skills)
}

func TestSearchReportsErrorStatus(t *testing.T) {
	es := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"boom"}`)
	})
	_, err := NewProfileIndex(es, "profiles").Search(context.Background(), 1, "x", 5)
	assert.Error(t, err)
}
