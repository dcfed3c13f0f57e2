package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"
)

// Indexer mirrors catalog and forum documents into Elasticsearch. Postgres
// stays the source of truth; searches return ids that callers hydrate from
// the primary store.
type Indexer struct {
	es     *elasticsearch.Client
	logger *logrus.Logger
}

func NewIndexer(es *elasticsearch.Client, logger *logrus.Logger) *Indexer {
	return &Indexer{es: es, logger: logger}
}

// Index upserts one document under its numeric id.
func (ix *Indexer) Index(ctx context.Context, index string, id int64, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	res, err := ix.es.Index(index, bytes.NewReader(body),
		ix.es.Index.WithDocumentID(strconv.FormatInt(id, 10)),
		ix.es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index %s/%d: %s", index, id, res.Status())
	}
	return nil
}

// Delete removes a document; a missing document is not an error.
func (ix *Indexer) Delete(ctx context.Context, index string, id int64) error {
	res, err := ix.es.Delete(index, strconv.FormatInt(id, 10),
		ix.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete %s/%d: %s", index, id, res.Status())
	}
	return nil
}

// SearchIDs runs a multi_match query over the given fields and returns the
// matching document ids, best first.
func (ix *Indexer) SearchIDs(ctx context.Context, index, query string, fields []string) ([]int64, error) {
	q := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    fields,
				"fuzziness": "AUTO",
			},
		},
		"_source": false,
		"size":    50,
	}
	body, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	res, err := ix.es.Search(
		ix.es.Search.WithContext(ctx),
		ix.es.Search.WithIndex(index),
		ix.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search %s: %s", index, res.Status())
	}

	var out struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		id, err := strconv.ParseInt(h.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
