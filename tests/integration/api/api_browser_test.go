package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"igv/api/models/dtos"
	"igv/api/tests/common"
	"igv/api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These run against a live service listening on cfg.Api.Url.
func ensureServiceIsUp(t *testing.T, url string) {
	if _, _, err := utils.RequestJson[map[string]interface{}](http.MethodGet, url+"/service-info", nil); err != nil {
		t.Skipf("service unavailable at %s : %v", url, err)
	}
}

func TestWithInvalidAuthenticationToken(t *testing.T) {
	cfg := common.InitConfig()
	ensureServiceIsUp(t, cfg.Api.Url)

	request, _ := http.NewRequest(http.MethodGet, cfg.Api.Url+"/genomes", nil)
	request.Header.Add("Authorization", "Bearer gibberish")

	client := &http.Client{}
	response, responseErr := client.Do(request)
	require.Nil(t, responseErr)
	defer response.Body.Close()

	// default response without a valid authentication token is 401
	shouldBe := http.StatusOK
	if cfg.AuthX.IsAuthorizationEnabled {
		shouldBe = http.StatusUnauthorized
	}
	assert.Equal(t, shouldBe, response.StatusCode)
}

func TestBrowserLifecycle(t *testing.T) {
	cfg := common.InitConfig()
	ensureServiceIsUp(t, cfg.Api.Url)
	if cfg.AuthX.IsAuthorizationEnabled {
		t.Skip("authorization is enabled")
	}

	created, status, err := utils.RequestJson[dtos.BrowserResponseDto](http.MethodPost, cfg.Api.Url+common.BrowsersPath,
		strings.NewReader(`{"genomeId": "hg38", "tracks": [{"url": "https://example.org/calls.vcf.gz"}]}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)

	browserUrl := cfg.Api.Url + fmt.Sprintf(common.BrowserPath, created.Id)

	t.Run("should fetch the browser back", func(t *testing.T) {
		browser, _, err := utils.RequestJson[dtos.BrowserResponseDto](http.MethodGet, browserUrl, nil)
		require.NoError(t, err)
		assert.Equal(t, created.ModelId, browser.ModelId)
		assert.Len(t, browser.State["tracks"], 1)
	})

	t.Run("should queue a search", func(t *testing.T) {
		_, status, err := utils.RequestJson[interface{}](http.MethodPost,
			cfg.Api.Url+fmt.Sprintf(common.BrowserSearchPath, created.Id, "BRCA1"), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, status)

		messages, _, err := utils.RequestJson[dtos.MessagesResponseDto](http.MethodGet,
			cfg.Api.Url+fmt.Sprintf(common.BrowserMessagePath, created.Id), nil)
		require.NoError(t, err)
		require.Equal(t, 1, messages.Count)
		assert.Equal(t, "BRCA1", messages.Messages[0].Symbol)
	})

	t.Run("should delete the browser", func(t *testing.T) {
		_, status, err := utils.RequestJson[interface{}](http.MethodDelete, browserUrl, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, status)

		_, status, _ = utils.RequestJson[interface{}](http.MethodGet, browserUrl, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
