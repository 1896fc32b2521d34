package frontendtesting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/rs/zerolog"
)

const endpointPath = "/frontendTesting"

type Client struct {
	client  *http.Client
	baseURL string
	logger  zerolog.Logger
}

// NewClient returns a client for the testing API rooted at baseURL. A nil
// httpClient means a plain client without any timeout.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		client:  httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// CreateFixtures asks the testing API to create the fixtures described by
// request. The call is made exactly once.
func (c *Client) CreateFixtures(ctx context.Context, request *Request) (*Response, error) {
	url := c.baseURL + endpointPath

	serializedRequest, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("Unable to encode testing API request: %w", err)
	}

	c.logger.Debug().
		Str("url", url).
		RawJSON("request", serializedRequest).
		Msg("Requesting fixtures from testing API")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(serializedRequest))
	if err != nil {
		return nil, fmt.Errorf("Unable to build testing API request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	rawResponse, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	defer rawResponse.Body.Close()

	c.logger.Trace().
		Int("statusCode", rawResponse.StatusCode).
		Func(func(e *zerolog.Event) {
			res, _ := httputil.DumpResponse(rawResponse, true)
			e.Str("response", string(res))
		}).
		Msg("Received testing API response")

	body, err := io.ReadAll(rawResponse.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("Unable to read response body: %w", err)}
	}

	if rawResponse.StatusCode < 200 || rawResponse.StatusCode > 299 {
		return nil, &APIError{StatusCode: rawResponse.StatusCode, Body: string(body)}
	}

	response := Response{}
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, &ParseError{Err: err}
	}

	response.StatusCode = rawResponse.StatusCode

	c.logger.Debug().Int("statusCode", response.StatusCode).Msg("Testing API created fixtures")

	return &response, nil
}
