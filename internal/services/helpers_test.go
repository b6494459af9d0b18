package services

import (
	"bytes"
	"context"
	"database/sql"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"contacts-api/config"
	"contacts-api/internal/models"
	"contacts-api/internal/repositories"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := config.ConnectDatabase(context.Background(), config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repositories.EnsureSchema(context.Background(), db, "sqlite"))
	return db
}

// fakeAvatarStore manages every avatar under prefix and records calls.
type fakeAvatarStore struct {
	prefix string

	mu      sync.Mutex
	saved   []string
	removed []string
}

func newFakeAvatarStore() *fakeAvatarStore {
	return &fakeAvatarStore{prefix: UploadsURLPrefix + "/"}
}

func (s *fakeAvatarStore) Save(_ context.Context, _ multipart.File, header *multipart.FileHeader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	avatar := s.prefix + header.Filename
	s.saved = append(s.saved, avatar)
	return avatar, nil
}

func (s *fakeAvatarStore) Owns(avatar string) bool {
	return strings.HasPrefix(avatar, s.prefix)
}

func (s *fakeAvatarStore) Remove(_ context.Context, avatar string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, avatar)
	return nil
}

func (s *fakeAvatarStore) Removed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.removed...)
}

// countingRepository counts the writes reaching the wrapped repository.
type countingRepository struct {
	models.ContactRepository
	updates int
}

func (r *countingRepository) Update(ctx context.Context, id int, patch models.ContactPatch) error {
	r.updates++
	return r.ContactRepository.Update(ctx, id, patch)
}

type publishedEvent struct {
	Type    string
	Payload interface{}
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) {
	p.events = append(p.events, publishedEvent{Type: eventType, Payload: payload})
}

func (p *recordingPublisher) Types() []string {
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

// newFileHeader builds an uploaded file the way net/http would parse it.
func newFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="avatarFile"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["avatarFile"][0]
}

func strPtr(s string) *string {
	return &s
}
