package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"igv/api/models"
	"igv/api/models/indexes"

	"github.com/Jeffail/gabs"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
)

const (
	browserSessionsIndex = "browser-sessions"
	browserDumpsIndex    = "browser-dumps"
)

var ErrDocumentNotFound = errors.New("document not found")

// EnsureIndices creates the session indices (with their mappings) that do
// not exist yet.
func EnsureIndices(cfg *models.Config, es *elasticsearch.Client) error {
	mappings := map[string]map[string]interface{}{
		browserSessionsIndex: indexes.BROWSER_SESSION_INDEX_MAPPING,
		browserDumpsIndex:    indexes.BROWSER_DUMP_INDEX_MAPPING,
	}

	for index, mapping := range mappings {
		existsRes, existsErr := es.Indices.Exists([]string{index})
		if existsErr != nil {
			return existsErr
		}
		existsRes.Body.Close()
		if existsRes.StatusCode == http.StatusOK {
			continue
		}

		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(map[string]interface{}{"mappings": mapping}); err != nil {
			return err
		}

		createRes, createErr := es.Indices.Create(index, es.Indices.Create.WithBody(&buf))
		if createErr != nil {
			return createErr
		}
		if _, err := parseResponse(cfg, createRes); err != nil {
			return fmt.Errorf("failed to create index %s : %w", index, err)
		}
		fmt.Printf("[%s] - Created index %s\n", time.Now(), index)
	}

	return nil
}

func SaveBrowserSession(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, doc indexes.BrowserSession) error {
	body, marshallErr := json.Marshal(doc)
	if marshallErr != nil {
		return marshallErr
	}

	res, indexErr := es.Index(
		browserSessionsIndex,
		bytes.NewReader(body),
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(doc.Id),
		es.Index.WithRefresh("true"),
	)
	if indexErr != nil {
		return indexErr
	}

	_, err := parseResponse(cfg, res)
	return err
}

func GetBrowserSessionById(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, id string) (*indexes.BrowserSession, error) {
	res, getErr := es.Get(browserSessionsIndex, id, es.Get.WithContext(ctx))
	if getErr != nil {
		return nil, getErr
	}
	if res.StatusCode == http.StatusNotFound {
		res.Body.Close()
		return nil, ErrDocumentNotFound
	}

	container, err := parseResponse(cfg, res)
	if err != nil {
		return nil, err
	}

	var session indexes.BrowserSession
	if err := decodeSource(container.Path("_source").Data(), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteBrowserSessionById deletes the session snapshot along with every
// dump received for it.
func DeleteBrowserSessionById(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, id string) error {
	res, deleteErr := es.Delete(
		browserSessionsIndex,
		id,
		es.Delete.WithContext(ctx),
		es.Delete.WithRefresh("true"),
	)
	if deleteErr != nil {
		return deleteErr
	}
	if res.StatusCode == http.StatusNotFound {
		res.Body.Close()
		return ErrDocumentNotFound
	}
	if _, err := parseResponse(cfg, res); err != nil {
		return err
	}

	_, err := deleteByQuery(ctx, cfg, es, browserDumpsIndex, map[string]interface{}{
		"term": map[string]interface{}{
			"browserId": id,
		},
	})
	return err
}

// DeleteBrowserSessionsOlderThan purges the sessions not updated since
// cutoff, and the dumps received before it. Returns the number of
// deleted sessions.
func DeleteBrowserSessionsOlderThan(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, cutoff time.Time) (int, error) {
	deleted, err := deleteByQuery(ctx, cfg, es, browserSessionsIndex, map[string]interface{}{
		"range": map[string]interface{}{
			"updatedAt": map[string]interface{}{
				"lt": cutoff.Format(time.RFC3339),
			},
		},
	})
	if err != nil {
		return 0, err
	}

	_, err = deleteByQuery(ctx, cfg, es, browserDumpsIndex, map[string]interface{}{
		"range": map[string]interface{}{
			"receivedAt": map[string]interface{}{
				"lt": cutoff.Format(time.RFC3339),
			},
		},
	})
	return deleted, err
}

func SaveBrowserDump(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, dump indexes.BrowserDump) error {
	body, marshallErr := json.Marshal(dump)
	if marshallErr != nil {
		return marshallErr
	}

	res, indexErr := es.Index(
		browserDumpsIndex,
		bytes.NewReader(body),
		es.Index.WithContext(ctx),
		es.Index.WithRefresh("true"),
	)
	if indexErr != nil {
		return indexErr
	}

	_, err := parseResponse(cfg, res)
	return err
}

// GetBrowserDumpsByBrowserId returns the most recent dumps first.
func GetBrowserDumpsByBrowserId(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, browserId string, size int) ([]indexes.BrowserDump, error) {
	var buf bytes.Buffer
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"browserId": browserId,
			},
		},
		"sort": []map[string]interface{}{{
			"receivedAt": map[string]string{"order": "desc"},
		}},
		"size": size,
	}
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	res, searchErr := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(browserDumpsIndex),
		es.Search.WithBody(&buf),
	)
	if searchErr != nil {
		return nil, searchErr
	}

	container, err := parseResponse(cfg, res)
	if err != nil {
		return nil, err
	}

	hits, _ := container.S("hits", "hits").Children()
	dumps := make([]indexes.BrowserDump, 0, len(hits))
	for _, hit := range hits {
		var dump indexes.BrowserDump
		if err := decodeSource(hit.Path("_source").Data(), &dump); err != nil {
			fmt.Printf("Failed to decode browser dump : %v\n", err)
			continue
		}
		dumps = append(dumps, dump)
	}

	return dumps, nil
}

// -- internal use only --
func deleteByQuery(ctx context.Context, cfg *models.Config, es *elasticsearch.Client, index string, q map[string]interface{}) (int, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(map[string]interface{}{"query": q}); err != nil {
		return 0, err
	}

	if cfg.Debug {
		fmt.Println(buf.String())
	}

	res, deleteErr := es.DeleteByQuery(
		[]string{index},
		&buf,
		es.DeleteByQuery.WithContext(ctx),
		es.DeleteByQuery.WithRefresh(true),
	)
	if deleteErr != nil {
		return 0, deleteErr
	}

	container, err := parseResponse(cfg, res)
	if err != nil {
		return 0, err
	}

	deleted, _ := container.Path("deleted").Data().(float64)
	return int(deleted), nil
}

func parseResponse(cfg *models.Config, res *esapi.Response) (*gabs.Container, error) {
	defer res.Body.Close()

	body, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		return nil, readErr
	}
	if cfg.Debug {
		fmt.Println(string(body))
	}

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch responded '%s'", res.Status())
	}

	return gabs.ParseJSON(body)
}

// _source maps carry dates as strings, round trip them through json
func decodeSource(source interface{}, v interface{}) error {
	if source == nil {
		return ErrDocumentNotFound
	}
	b, err := json.Marshal(source)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
