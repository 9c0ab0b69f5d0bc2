package elasticsearch

import (
	"context"
	"errors"
	"testing"
	"time"

	"igv/api/models/indexes"
	esRepo "igv/api/repositories/elasticsearch"
	"igv/api/tests/common"
	"igv/api/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserSessionPersistence(t *testing.T) {
	cfg := common.InitConfig()
	if !cfg.Elasticsearch.Enabled {
		t.Skip("elasticsearch is disabled in the test configuration")
	}

	es, err := utils.CreateEsConnection(cfg)
	require.NoError(t, err)
	require.NoError(t, esRepo.EnsureIndices(cfg, es))

	ctx := context.Background()
	id := uuid.New().String()
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("should save and fetch a session", func(t *testing.T) {
		doc := indexes.BrowserSession{
			Id:        id,
			GenomeId:  "hg38",
			State:     map[string]interface{}{"version_major": float64(2)},
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, esRepo.SaveBrowserSession(ctx, cfg, es, doc))

		fetched, err := esRepo.GetBrowserSessionById(ctx, cfg, es, id)
		require.NoError(t, err)
		assert.Equal(t, "hg38", fetched.GenomeId)
		assert.Equal(t, doc.State, fetched.State)
	})

	t.Run("should return the latest dump first", func(t *testing.T) {
		for i, locus := range []string{"chr1", "chr2"} {
			require.NoError(t, esRepo.SaveBrowserDump(ctx, cfg, es, indexes.BrowserDump{
				BrowserId:  id,
				Json:       map[string]interface{}{"locus": locus},
				ReceivedAt: now.Add(time.Duration(i) * time.Second),
			}))
		}

		dumps, err := esRepo.GetBrowserDumpsByBrowserId(ctx, cfg, es, id, 1)
		require.NoError(t, err)
		require.Len(t, dumps, 1)
		assert.Equal(t, "chr2", dumps[0].Json.(map[string]interface{})["locus"])
	})

	t.Run("should delete a session with its dumps", func(t *testing.T) {
		require.NoError(t, esRepo.DeleteBrowserSessionById(ctx, cfg, es, id))

		_, err := esRepo.GetBrowserSessionById(ctx, cfg, es, id)
		assert.True(t, errors.Is(err, esRepo.ErrDocumentNotFound))

		dumps, err := esRepo.GetBrowserDumpsByBrowserId(ctx, cfg, es, id, 10)
		require.NoError(t, err)
		assert.Empty(t, dumps)
	})
}
