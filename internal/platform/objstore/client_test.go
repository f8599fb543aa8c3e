// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

package objstore_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcebotari/vatra/internal/platform/objstore"
)

func ptr(s string) *string { return &s }

/*
TestClient_PublicURL verifies public delivery URL construction.
*/
func TestClient_PublicURL(t *testing.T) {
	client := objstore.New("https://store.example.com/", "key", nil)

	assert.Equal(t,
		"https://store.example.com/storage/v1/object/public/menu/taverna/ciorba/1.webp",
		client.PublicURL("menu", "taverna/ciorba/1.webp"),
	)

	// Leading slashes on keys must not produce double slashes.
	assert.Equal(t,
		"https://store.example.com/storage/v1/object/public/menu/a.png",
		client.PublicURL("menu", "/a.png"),
	)
}

/*
TestClient_List verifies listing decode, auth header, and folder detection.
*/
func TestClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodPost, request.Method)
		require.Equal(t, "/storage/v1/object/list/menu", request.URL.Path)
		require.Equal(t, "Bearer service-key", request.Header.Get("Authorization"))

		var body struct {
			Prefix string `json:"prefix"`
			Limit  int    `json:"limit"`
			Offset int    `json:"offset"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "taverna/ciorbe", body.Prefix)

		entries := []objstore.Object{
			{Name: "1.webp", ID: ptr("obj-1")},
			{Name: "2.webp", ID: ptr("obj-2")},
			{Name: "archive", ID: nil},
		}
		_ = json.NewEncoder(writer).Encode(entries)
	}))
	defer server.Close()

	client := objstore.New(server.URL, "service-key", server.Client())

	entries, err := client.List(context.Background(), "menu", "taverna/ciorbe")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.False(t, entries[0].IsFolder())
	assert.False(t, entries[1].IsFolder())
	assert.True(t, entries[2].IsFolder())
}

/*
TestClient_List_Upstream error verifies that non-200 listings surface the
store's message.
*/
func TestClient_List_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`{"message":"bucket not found"}`))
	}))
	defer server.Close()

	client := objstore.New(server.URL, "service-key", server.Client())

	_, err := client.List(context.Background(), "missing", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "bucket not found")
}

/*
TestClient_GetPublic verifies that public reads return the raw response,
including non-2xx statuses.
*/
func TestClient_GetPublic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.Header.Get("Authorization"))

		switch request.URL.Path {
		case "/storage/v1/object/public/menu/exists.webp":
			writer.Header().Set("Content-Type", "image/webp")
			_, _ = writer.Write([]byte("bytes"))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := objstore.New(server.URL, "service-key", server.Client())

	response, err := client.GetPublic(context.Background(), "menu", "exists.webp")
	require.NoError(t, err)
	defer response.Body.Close()

	body, _ := io.ReadAll(response.Body)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "bytes", string(body))

	missing, err := client.GetPublic(context.Background(), "menu", "missing.webp")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

/*
TestClient_Remove verifies the JSON body of a batch removal.
*/
func TestClient_Remove(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodDelete, request.Method)
		require.Equal(t, "/storage/v1/object/gallery", request.URL.Path)

		var body struct {
			Prefixes []string `json:"prefixes"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, []string{"a.webp", "b.webp"}, body.Prefixes)
	}))
	defer server.Close()

	client := objstore.New(server.URL, "service-key", server.Client())
	err := client.Remove(context.Background(), "gallery", []string{"a.webp", "b.webp"})
	assert.NoError(t, err)
}
