package promo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcebotari/vatra/internal/platform/sec"
	"github.com/dcebotari/vatra/internal/promo"
)

type fakeRepo struct {
	items  map[int]*promo.Item
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[int]*promo.Item{}}
}

func (repo *fakeRepo) List(_ context.Context) ([]promo.Item, error) {
	var out []promo.Item
	for _, item := range repo.items {
		out = append(out, *item)
	}
	return out, nil
}

func (repo *fakeRepo) Create(_ context.Context, item *promo.Item) error {
	repo.nextID++
	item.ID = repo.nextID
	repo.items[item.ID] = item
	return nil
}

func (repo *fakeRepo) Delete(_ context.Context, id int) (*promo.Item, error) {
	item, ok := repo.items[id]
	if !ok {
		return nil, errors.New("no such item")
	}
	delete(repo.items, id)
	return item, nil
}

type fakeStorage struct {
	uploaded map[string]string // "bucket/key" -> content
	removed  []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploaded: map[string]string{}}
}

func (storage *fakeStorage) PublicURL(bucket, key string) string {
	return "https://store.example/storage/v1/object/public/" + bucket + "/" + key
}

func (storage *fakeStorage) Upload(_ context.Context, bucket, key, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	storage.uploaded[bucket+"/"+key] = string(data)
	return nil
}

func (storage *fakeStorage) Remove(_ context.Context, _ string, keys []string) error {
	storage.removed = append(storage.removed, keys...)
	return nil
}

func newService(repo *fakeRepo, storage *fakeStorage) *promo.Service {
	tokens := sec.NewUploadTokenService("test-secret", "vatra-test")
	return promo.NewService(repo, storage, "gallery", tokens, slog.Default())
}

/*
TestSignedUploadFlow walks the two-phase path end to end: sign, stream the
bytes with the token, then record the row.
*/
func TestSignedUploadFlow(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	service := newService(repo, storage)

	signed, err := service.SignUpload("Platou Vatra.WEBP")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed.Path, "promo/"))
	assert.True(t, strings.HasSuffix(signed.Path, ".webp"))
	assert.Equal(t, "/api/uploads/"+signed.Token, signed.UploadURL)

	err = service.ReceiveUpload(context.Background(), signed.Token, "image/webp", strings.NewReader("webp-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "webp-bytes", storage.uploaded["gallery/"+signed.Path])

	item, err := service.Complete(context.Background(), promo.CompleteInput{
		Title: "Platou Vatra",
		Price: "250 lei",
		Path:  signed.Path,
	})
	require.NoError(t, err)
	assert.Equal(t, storage.PublicURL("gallery", signed.Path), item.ImageURL)
}

func TestReceiveUpload_RejectsBadToken(t *testing.T) {
	service := newService(newFakeRepo(), newFakeStorage())

	err := service.ReceiveUpload(context.Background(), "not-a-token", "image/webp", strings.NewReader("x"))
	require.Error(t, err)
}

func TestReceiveUpload_RejectsForeignSignature(t *testing.T) {
	service := newService(newFakeRepo(), newFakeStorage())

	foreign := sec.NewUploadTokenService("other-secret", "vatra-test")
	token, err := foreign.Sign("gallery", "promo/x.webp", time.Minute)
	require.NoError(t, err)

	err = service.ReceiveUpload(context.Background(), token, "image/webp", strings.NewReader("x"))
	require.Error(t, err)
}

func TestComplete_RejectsForeignPath(t *testing.T) {
	service := newService(newFakeRepo(), newFakeStorage())

	_, err := service.Complete(context.Background(), promo.CompleteInput{
		Title: "X",
		Price: "1 leu",
		Path:  "../menu/taverna/x.webp",
	})
	require.Error(t, err)
}

func TestUpload_Direct(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	service := newService(repo, storage)

	item, err := service.Upload(context.Background(), promo.UploadInput{
		Title:       "Sushi Set",
		Price:       "de la 120 lei",
		Filename:    "set.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sushi Set", item.Title)
	require.Len(t, storage.uploaded, 1)
}

func TestDelete_RemovesObject(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	service := newService(repo, storage)

	repo.items[1] = &promo.Item{
		ID:       1,
		Title:    "X",
		Price:    "1 leu",
		ImageURL: storage.PublicURL("gallery", "promo/a.webp"),
	}
	repo.nextID = 1

	require.NoError(t, service.Delete(context.Background(), 1))
	assert.Equal(t, []string{"promo/a.webp"}, storage.removed)
	assert.Empty(t, repo.items)
}
