// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

/*
Package objstore is a minimal client for the hosted object-storage service.

The store speaks a plain REST API (Supabase-storage compatible): folder
listings are POSTed as JSON, public objects are plain GETs, and writes are
authorized with a service key. This package owns every URL the rest of the
application needs, so bucket/key handling never leaks into domain code.

Core Responsibilities:

  - Listing: Non-recursive folder listings for the storage synchronizer.
  - Delivery: Public-object URLs and proxied reads for the image route.
  - Writes: Uploads and best-effort removals for the admin dashboard.
*/
package objstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// PublicPrefix is the URL path prefix under which the store exposes
// publicly readable objects: {base}/storage/v1/object/public/{bucket}/{key}.
const PublicPrefix = "/storage/v1/object/public/"

// listPageSize caps a single listing request. Folders larger than one page
// are drained with offset paging.
const listPageSize = 1000

// Object is a single entry returned by a folder listing.
type Object struct {
	// Name is the entry's base name within the listed folder.
	Name string `json:"name"`

	// ID is nil for pseudo-folder entries, which carry no object ID.
	ID *string `json:"id"`
}

// IsFolder reports whether the entry denotes a sub-folder rather than an object.
func (o Object) IsFolder() bool {
	return o.ID == nil || strings.HasSuffix(o.Name, "/")
}

// Client talks to one object-store deployment.
//
// All methods are safe for concurrent use; the client holds no mutable state
// beyond the embedded [http.Client] pool.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// New constructs a [Client] for the store at baseURL.
//
// serviceKey authorizes listings and writes; public reads never send it.
// A nil httpClient falls back to a default with a bounded timeout.
func New(baseURL, serviceKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: httpClient,
	}
}

// BaseURL returns the store's base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PublicURL returns the public delivery URL for bucket/key.
func (c *Client) PublicURL(bucket, key string) string {
	return c.baseURL + PublicPrefix + bucket + "/" + strings.TrimLeft(key, "/")
}

// # Listings

type listRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// List returns the direct children of prefix within bucket (non-recursive).
//
// A missing folder is not an error: the store answers with an empty page,
// and the caller sees a nil slice.
func (c *Client) List(ctx context.Context, bucket, prefix string) ([]Object, error) {
	var all []Object

	for offset := 0; ; offset += listPageSize {
		page, err := c.listPage(ctx, bucket, prefix, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
	}
}

func (c *Client) listPage(ctx context.Context, bucket, prefix string, offset int) ([]Object, error) {
	payload, err := json.Marshal(listRequest{Prefix: prefix, Limit: listPageSize, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("objstore: failed to encode list request: %w", err)
	}

	endpoint := c.baseURL + "/storage/v1/object/list/" + bucket
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("objstore: failed to build list request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	c.authorize(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("objstore: list %s/%s failed: %w", bucket, prefix, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, c.statusError("list", bucket, prefix, response)
	}

	var entries []Object
	if err := json.NewDecoder(response.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("objstore: failed to decode listing for %s/%s: %w", bucket, prefix, err)
	}

	return entries, nil
}

// # Public Reads

// GetPublic fetches a public object. The caller owns the response body and
// must close it. Non-2xx responses are returned as-is so callers can
// propagate the upstream status.
func (c *Client) GetPublic(ctx context.Context, bucket, key string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PublicURL(bucket, key), nil)
	if err != nil {
		return nil, fmt.Errorf("objstore: failed to build get request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("objstore: get %s/%s failed: %w", bucket, key, err)
	}

	return response, nil
}

// # Writes

// Upload stores body under bucket/key. Existing objects are not overwritten.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	endpoint := c.baseURL + "/storage/v1/object/" + bucket + "/" + strings.TrimLeft(key, "/")
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("objstore: failed to build upload request: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("x-upsert", "false")
	request.Header.Set("Cache-Control", "31536000")
	c.authorize(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("objstore: upload %s/%s failed: %w", bucket, key, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return c.statusError("upload", bucket, key, response)
	}

	return nil
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Remove deletes the named objects from bucket.
func (c *Client) Remove(ctx context.Context, bucket string, keys []string) error {
	payload, err := json.Marshal(removeRequest{Prefixes: keys})
	if err != nil {
		return fmt.Errorf("objstore: failed to encode remove request: %w", err)
	}

	endpoint := c.baseURL + "/storage/v1/object/" + bucket
	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("objstore: failed to build remove request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	c.authorize(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("objstore: remove from %s failed: %w", bucket, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return c.statusError("remove", bucket, strings.Join(keys, ","), response)
	}

	return nil
}

// # Helpers

func (c *Client) authorize(request *http.Request) {
	if c.serviceKey != "" {
		request.Header.Set("Authorization", "Bearer "+c.serviceKey)
	}
}

// statusError drains a bounded slice of the response body so the store's
// own message survives into logs.
func (c *Client) statusError(operation, bucket, key string, response *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(response.Body, 512))
	return fmt.Errorf("objstore: %s %s/%s returned %d: %s",
		operation, bucket, key, response.StatusCode, strings.TrimSpace(string(snippet)))
}
