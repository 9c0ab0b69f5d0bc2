package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RequestJson sends a request and decodes a successful json response
// into T.
func RequestJson[T any](method string, url string, body io.Reader) (T, int, error) {
	var objects T

	client := &http.Client{}
	request, requestErr := http.NewRequest(method, url, body)
	if requestErr != nil {
		return objects, 0, requestErr
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, responseErr := client.Do(request)
	if responseErr != nil {
		return objects, 0, responseErr
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return objects, response.StatusCode, fmt.Errorf("%s %s : %s", method, url, response.Status)
	}
	if response.StatusCode == http.StatusNoContent || response.StatusCode == http.StatusAccepted {
		return objects, response.StatusCode, nil
	}

	if jsonErr := json.NewDecoder(response.Body).Decode(&objects); jsonErr != nil {
		return objects, response.StatusCode, jsonErr
	}
	return objects, response.StatusCode, nil
}
