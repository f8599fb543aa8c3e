// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

// Command mirror downloads the public objects of the storage buckets into
// the local public directory, so the API can serve images without touching
// the store. It is run at deploy time, after content changes.
//
// Usage:
//
//	mirror -store https://xyz.supabase.co -buckets menu,gallery -out ./public
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dcebotari/vatra/internal/platform/objstore"
)

func main() {
	storeURL := flag.String("store", os.Getenv("STORAGE_URL"), "object store base URL")
	serviceKey := flag.String("key", os.Getenv("STORAGE_SERVICE_KEY"), "service key for folder listings")
	buckets := flag.String("buckets", "menu,gallery", "comma-separated buckets to mirror")
	outDir := flag.String("out", "./public", "local directory to mirror into")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "vatra-mirror"))

	if *storeURL == "" {
		log.Error("store URL is required (-store or STORAGE_URL)")
		os.Exit(1)
	}

	client := objstore.New(*storeURL, *serviceKey, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	total := 0
	for _, bucket := range strings.Split(*buckets, ",") {
		bucket = strings.TrimSpace(bucket)
		if bucket == "" {
			continue
		}

		count, err := mirrorFolder(ctx, log, client, bucket, "", *outDir)
		if err != nil {
			log.Error("mirror failed", slog.String("bucket", bucket), slog.Any("error", err))
			os.Exit(1)
		}
		total += count
	}

	log.Info("mirror complete", slog.Int("objects", total))
}

// mirrorFolder downloads every object under bucket/prefix, recursing into
// sub-folders. Already-downloaded files are overwritten: object names are
// content-stable, so a re-run only moves bytes for new files.
func mirrorFolder(ctx context.Context, log *slog.Logger, client *objstore.Client, bucket, prefix, outDir string) (int, error) {
	entries, err := client.List(ctx, bucket, prefix)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		key := entry.Name
		if prefix != "" {
			key = prefix + "/" + entry.Name
		}

		if entry.IsFolder() {
			nested, err := mirrorFolder(ctx, log, client, bucket, strings.TrimSuffix(key, "/"), outDir)
			if err != nil {
				return count, err
			}
			count += nested
			continue
		}

		if err := download(ctx, client, bucket, key, outDir); err != nil {
			return count, err
		}
		log.Info("mirrored", slog.String("bucket", bucket), slog.String("key", key))
		count++
	}

	return count, nil
}

func download(ctx context.Context, client *objstore.Client, bucket, key, outDir string) error {
	response, err := client.GetPublic(ctx, bucket, key)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != 200 {
		// Skip objects that are not public; the proxy route still covers them.
		return nil
	}

	target := filepath.Join(outDir, bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	file, err := os.Create(target)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, response.Body); err != nil {
		return err
	}
	return file.Close()
}
