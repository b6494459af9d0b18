package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts-api/internal/models"
	"contacts-api/internal/repositories"
	"contacts-api/internal/validation"
)

type serviceFixture struct {
	service *ContactService
	repo    *countingRepository
	store   *fakeAvatarStore
	cleaner *AvatarCleaner
	events  *recordingPublisher
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	repo := &countingRepository{ContactRepository: repositories.NewSQLContactRepository(newTestDB(t))}
	store := newFakeAvatarStore()
	cleaner := NewAvatarCleaner(store)
	events := &recordingPublisher{}
	return &serviceFixture{
		service: NewContactService(repo, store, cleaner, events),
		repo:    repo,
		store:   store,
		cleaner: cleaner,
		events:  events,
	}
}

// create stores patch. A managed avatar value is sent as an upload of that
// file name, the only way managed avatars can be assigned.
func (f *serviceFixture) create(t *testing.T, patch models.ContactPatch) *models.Contact {
	t.Helper()
	var upload *multipart.FileHeader
	if patch.Avatar.Set && f.store.Owns(patch.Avatar.Value) {
		upload = newFileHeader(t, strings.TrimPrefix(patch.Avatar.Value, f.store.prefix), "image/png", []byte("\x89PNG"))
		patch.Avatar = models.Optional[string]{}
	}
	c, err := f.service.Create(context.Background(), patch, upload)
	require.NoError(t, err)
	return c
}

func TestCreateThenGetReturnsSuppliedFields(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann Lee")})

	got, err := f.service.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.Contact{ID: created.ID, Name: "Ann Lee"}, got)
	assert.Equal(t, []string{EventContactCreated}, f.events.Types())
}

func TestCreateIgnoresEmptyStrings(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Email: models.Some("")})
	assert.Nil(t, created.Email)
}

func TestCreateWithUploadedAvatar(t *testing.T) {
	f := newServiceFixture(t)
	fh := newFileHeader(t, "face.png", "image/png", []byte("\x89PNG"))

	created, err := f.service.Create(context.Background(), models.ContactPatch{
		Name:   models.Some("Ann"),
		Avatar: models.Some("https://cdn.example.com/ignored.png"),
	}, fh)
	require.NoError(t, err)
	assert.Equal(t, "/public/uploads/face.png", created.AvatarPath())
}

func TestGetByIDNotFound(t *testing.T) {
	_, err := newServiceFixture(t).service.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, models.ErrContactNotFound)
}

func TestListPaginatesWithMetadata(t *testing.T) {
	f := newServiceFixture(t)
	for _, name := range []string{"Ann", "Bob", "Joanne", "Hannah", "Carl", "Annie", "Dan"} {
		f.create(t, models.ContactPatch{Name: models.Some(name)})
	}

	page, limit := 2, 2
	result, err := f.service.List(context.Background(), models.ContactListQuery{Name: "AN", Page: &page, Limit: &limit})
	require.NoError(t, err)

	require.Len(t, result.Contacts, 2)
	assert.Equal(t, "Hannah", result.Contacts[0].Name)
	assert.Equal(t, "Annie", result.Contacts[1].Name)
	assert.Equal(t, 5, result.Metadata.TotalRecords)
	assert.Equal(t, 3, result.Metadata.TotalPages)
	assert.Equal(t, 3, result.Metadata.LastPage)
	assert.Equal(t, 1, result.Metadata.FirstPage)
	assert.Equal(t, 2, result.Metadata.Page)
}

func TestListDefaultsAndFavoriteFilter(t *testing.T) {
	f := newServiceFixture(t)
	for i := 0; i < 7; i++ {
		f.create(t, models.ContactPatch{Name: models.Some("Contact"), Favorite: models.Some(i < 3)})
	}

	all, err := f.service.List(context.Background(), models.ContactListQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Contacts, 5)
	assert.Equal(t, 7, all.Metadata.TotalRecords)
	assert.Equal(t, 5, all.Metadata.Limit)

	favorite := true
	favs, err := f.service.List(context.Background(), models.ContactListQuery{Favorite: &favorite})
	require.NoError(t, err)
	assert.Equal(t, 3, favs.Metadata.TotalRecords)

	favorite = false
	unfiltered, err := f.service.List(context.Background(), models.ContactListQuery{Favorite: &favorite})
	require.NoError(t, err)
	assert.Equal(t, 7, unfiltered.Metadata.TotalRecords)
}

func TestUpdateEmptyPatchIssuesNoWrite(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Email: models.Some("ann@example.com")})

	updated, err := f.service.Update(context.Background(), created.ID, models.ContactPatch{Name: models.Some("")}, nil)
	require.NoError(t, err)

	assert.Equal(t, created, updated)
	assert.Zero(t, f.repo.updates)
	assert.Equal(t, []string{EventContactCreated}, f.events.Types())
}

func TestUpdateFavoriteFalsePersists(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Favorite: models.Some(true)})

	updated, err := f.service.Update(ctx, created.ID, models.ContactPatch{Favorite: models.Some(false)}, nil)
	require.NoError(t, err)
	assert.False(t, updated.Favorite)

	got, err := f.service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Favorite)
	assert.Equal(t, "Ann", got.Name)
}

func TestUpdateMergesIntoExisting(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Phone: models.Some("555-0100")})

	updated, err := f.service.Update(context.Background(), created.ID, models.ContactPatch{Email: models.Some("ann@example.com")}, nil)
	require.NoError(t, err)

	assert.Equal(t, &models.Contact{
		ID:    created.ID,
		Name:  "Ann",
		Email: strPtr("ann@example.com"),
		Phone: strPtr("555-0100"),
	}, updated)
	assert.Equal(t, 1, f.repo.updates)
	assert.Equal(t, []string{EventContactCreated, EventContactUpdated}, f.events.Types())
}

func TestUpdateNotFound(t *testing.T) {
	f := newServiceFixture(t)
	_, err := f.service.Update(context.Background(), 5, models.ContactPatch{Name: models.Some("Ann")}, nil)
	assert.ErrorIs(t, err, models.ErrContactNotFound)
	assert.Zero(t, f.repo.updates)
}

func TestUpdateReplacesManagedAvatar(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Avatar: models.Some("/public/uploads/old.png")})

	fh := newFileHeader(t, "new.png", "image/png", []byte("\x89PNG"))
	updated, err := f.service.Update(context.Background(), created.ID, models.ContactPatch{}, fh)
	require.NoError(t, err)
	f.cleaner.Wait()

	assert.Equal(t, "/public/uploads/new.png", updated.AvatarPath())
	assert.Equal(t, []string{"/public/uploads/old.png"}, f.store.Removed())
}

func TestUpdateWithoutAvatarKeepsFile(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Avatar: models.Some("/public/uploads/a.png")})

	_, err := f.service.Update(context.Background(), created.ID, models.ContactPatch{Name: models.Some("Anne")}, nil)
	require.NoError(t, err)
	f.cleaner.Wait()

	assert.Empty(t, f.store.Removed())
}

func TestUpdateFromExternalAvatarRemovesNothing(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Avatar: models.Some("https://cdn.example.com/a.png")})

	fh := newFileHeader(t, "b.png", "image/png", []byte("\x89PNG"))
	updated, err := f.service.Update(context.Background(), created.ID, models.ContactPatch{}, fh)
	require.NoError(t, err)
	f.cleaner.Wait()

	assert.Equal(t, "/public/uploads/b.png", updated.AvatarPath())
	assert.Empty(t, f.store.Removed())
}

func TestCreateRejectsManagedAvatarValue(t *testing.T) {
	f := newServiceFixture(t)
	owner := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Avatar: models.Some("/public/uploads/ann.png")})

	_, err := f.service.Create(context.Background(), models.ContactPatch{
		Name:   models.Some("Bob"),
		Avatar: models.Some(owner.AvatarPath()),
	}, nil)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "input.avatar", verr.Issues[0].Field)

	result, err := f.service.List(context.Background(), models.ContactListQuery{})
	require.NoError(t, err)
	assert.Len(t, result.Contacts, 1)
}

func TestUpdateRejectsAnotherContactsAvatar(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	owner := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Avatar: models.Some("/public/uploads/ann.png")})
	other := f.create(t, models.ContactPatch{Name: models.Some("Bob")})

	_, err := f.service.Update(ctx, other.ID, models.ContactPatch{Avatar: models.Some(owner.AvatarPath())}, nil)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, f.repo.updates)

	_, err = f.service.Delete(ctx, other.ID)
	require.NoError(t, err)
	f.cleaner.Wait()
	assert.Empty(t, f.store.Removed())
}

func TestUpdateKeepsOwnManagedAvatarValue(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Avatar: models.Some("/public/uploads/ann.png")})

	updated, err := f.service.Update(context.Background(), created.ID, models.ContactPatch{
		Name:   models.Some("Anne"),
		Avatar: models.Some("/public/uploads/ann.png"),
	}, nil)
	require.NoError(t, err)
	f.cleaner.Wait()

	assert.Equal(t, "/public/uploads/ann.png", updated.AvatarPath())
	assert.Empty(t, f.store.Removed())
}

func TestExternalAvatarValueAllowed(t *testing.T) {
	f := newServiceFixture(t)
	created, err := f.service.Create(context.Background(), models.ContactPatch{
		Name:   models.Some("Ann"),
		Avatar: models.Some("https://cdn.example.com/a.png"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", created.AvatarPath())
}

func TestDeleteAvatarCleanup(t *testing.T) {
	tests := []struct {
		name    string
		avatar  models.Optional[string]
		removed []string
	}{
		{"managed avatar", models.Some("/public/uploads/a.png"), []string{"/public/uploads/a.png"}},
		{"no avatar", models.Optional[string]{}, nil},
		{"external url", models.Some("https://cdn.example.com/a.png"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Avatar: tt.avatar})

			deleted, err := f.service.Delete(context.Background(), created.ID)
			require.NoError(t, err)
			f.cleaner.Wait()

			assert.Equal(t, created, deleted)
			assert.Equal(t, tt.removed, f.store.Removed())

			_, err = f.service.GetByID(context.Background(), created.ID)
			assert.ErrorIs(t, err, models.ErrContactNotFound)
		})
	}
}

func TestDeleteNotFound(t *testing.T) {
	f := newServiceFixture(t)
	_, err := f.service.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, models.ErrContactNotFound)
	assert.Empty(t, f.events.Types())
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	f.create(t, models.ContactPatch{Name: models.Some("A"), Avatar: models.Some("/public/uploads/a.png")})
	f.create(t, models.ContactPatch{Name: models.Some("B"), Avatar: models.Some("https://cdn.example.com/b.png")})
	f.create(t, models.ContactPatch{Name: models.Some("C")})
	f.create(t, models.ContactPatch{Name: models.Some("D"), Avatar: models.Some("/public/uploads/d.png")})

	require.NoError(t, f.service.DeleteAll(ctx))
	f.cleaner.Wait()

	assert.ElementsMatch(t, []string{"/public/uploads/a.png", "/public/uploads/d.png"}, f.store.Removed())
	result, err := f.service.List(ctx, models.ContactListQuery{})
	require.NoError(t, err)
	assert.Empty(t, result.Contacts)
	assert.Contains(t, f.events.Types(), EventContactsDeleted)
}

func TestQRCode(t *testing.T) {
	f := newServiceFixture(t)
	created := f.create(t, models.ContactPatch{Name: models.Some("Ann"), Phone: models.Some("555-0100")})

	png, err := f.service.QRCode(context.Background(), created.ID, 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	_, err = f.service.QRCode(context.Background(), created.ID+1, 128)
	assert.ErrorIs(t, err, models.ErrContactNotFound)
}
