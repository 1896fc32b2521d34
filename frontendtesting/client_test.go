package frontendtesting

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.URL+"/api/v2", server.Client(), zerolog.Nop())
}

func TestCreateFixtures_SendsRequest(t *testing.T) {
	var (
		method, path, contentType, authorization string
		body                                     map[string]any
	)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		authorization = r.Header.Get("Authorization")

		raw, err := io.ReadAll(r.Body)
		if assert.NoError(t, err) {
			assert.NoError(t, json.Unmarshal(raw, &body))
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"login":{"user":{"username":"u1","password":"p1"}}}`)
	})

	response, err := client.CreateFixtures(context.Background(), NewRequest("fr_FR", false))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/api/v2/frontendTesting", path)
	assert.Equal(t, "application/json", contentType)
	assert.Empty(t, authorization)
	assert.Equal(t, map[string]any{
		"login": map[string]any{"user": map[string]any{"language": "fr_FR"}},
	}, body)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	require.NotNil(t, response.Login)
	require.NotNil(t, response.Login.User)
	assert.Equal(t, "u1", *response.Login.User.Username)
	assert.Equal(t, "p1", *response.Login.User.Password)
}

func TestCreateFixtures_TrailingSlashInBaseURL(t *testing.T) {
	var path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/v2/", nil, zerolog.Nop())
	_, err := client.CreateFixtures(context.Background(), NewRequest("en_US", false))
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/frontendTesting", path)
}

func TestCreateFixtures_DecodesVendorFixtures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{
			"login": {"user": {"username": "u1", "password": "p1"}},
			"bpartners": {"VENDOR1": {"bpartnerCode": "BP001"}},
			"products": {"PRODUCT1": {"productName": "Test Product"}}
		}`)
	})

	response, err := client.CreateFixtures(context.Background(), NewRequest("en_US", true))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, response.StatusCode)
	require.Contains(t, response.BPartners, VendorKey)
	assert.Equal(t, "BP001", *response.BPartners[VendorKey].BPartnerCode)
	require.Contains(t, response.Products, ProductKey)
	assert.Equal(t, "Test Product", *response.Products[ProductKey].ProductName)
}

func TestCreateFixtures_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "server error")
	})

	response, err := client.CreateFixtures(context.Background(), NewRequest("en_US", false))
	require.Error(t, err)
	assert.Nil(t, response)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "server error", apiErr.Body)
	assert.EqualError(t, err, "HTTP 500: server error")
}

func TestCreateFixtures_ParseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	})

	_, err := client.CreateFixtures(context.Background(), NewRequest("en_US", false))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestCreateFixtures_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, nil, zerolog.Nop())
	_, err := client.CreateFixtures(context.Background(), NewRequest("en_US", false))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotNil(t, transportErr.Unwrap())
}
