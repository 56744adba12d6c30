package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)

		_ = json.NewEncoder(w).Encode(generateResponse{Response: "echo: " + req.Prompt})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")

	response, err := client.Generate(context.Background(), "hi")
	assert.NoError(t, err)
	assert.Equal(t, "echo: hi", response)
}

func TestClient_Generate_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")

	_, err := client.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestClient_Generate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(server.URL, "test-model")

	_, err := client.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestClient_Generate_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-model")

	response, err := client.Generate(context.Background(), "hi")
	assert.NoError(t, err)
	assert.Equal(t, "No response from AI", response)
}
