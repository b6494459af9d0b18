package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"contacts-api/internal/models"
	"contacts-api/internal/paginator"
	"contacts-api/internal/utils"
	"contacts-api/internal/validation"
)

const (
	EventContactCreated  = "contact.created"
	EventContactUpdated  = "contact.updated"
	EventContactDeleted  = "contact.deleted"
	EventContactsDeleted = "contacts.deleted"
)

const DefaultQRCodeSize = 256

// EventPublisher receives a notification after every successful change.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

type ContactPage struct {
	Contacts []*models.Contact `json:"contacts"`
	Metadata paginator.Metadata `json:"metadata"`
}

type ContactService struct {
	repo    models.ContactRepository
	avatars AvatarStore
	cleaner *AvatarCleaner
	events  EventPublisher
}

func NewContactService(repo models.ContactRepository, avatars AvatarStore, cleaner *AvatarCleaner, events EventPublisher) *ContactService {
	return &ContactService{
		repo:    repo,
		avatars: avatars,
		cleaner: cleaner,
		events:  events,
	}
}

func (s *ContactService) publish(eventType string, payload interface{}) {
	if s.events != nil {
		s.events.Publish(eventType, payload)
	}
}

// checkAvatarValue rejects a client-supplied avatar pointing at a file the
// store manages, unless it is the contact's current avatar. Managed files
// only enter through uploads so each one belongs to a single contact.
func (s *ContactService) checkAvatarValue(avatar models.Optional[string], current string) error {
	if !avatar.Set || avatar.Value == current || !s.avatars.Owns(avatar.Value) {
		return nil
	}
	return &validation.Error{Issues: []validation.Issue{{
		Field:   "input.avatar",
		Message: "Avatar cannot reference an uploaded file, send it as avatarFile",
	}}}
}

func (s *ContactService) saveAvatar(ctx context.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("error opening uploaded avatar: %w", err)
	}
	defer file.Close()

	return s.avatars.Save(ctx, file, header)
}

// Create stores a new contact. An uploaded avatar file replaces any avatar
// value in patch.
func (s *ContactService) Create(ctx context.Context, patch models.ContactPatch, avatarFile *multipart.FileHeader) (*models.Contact, error) {
	patch = patch.Normalized()

	var uploaded string
	if avatarFile != nil {
		avatar, err := s.saveAvatar(ctx, avatarFile)
		if err != nil {
			return nil, err
		}
		uploaded = avatar
		patch.Avatar = models.Some(avatar)
	} else if err := s.checkAvatarValue(patch.Avatar, ""); err != nil {
		return nil, err
	}

	contact, err := s.repo.Create(ctx, patch)
	if err != nil {
		s.cleaner.Schedule(uploaded)
		return nil, err
	}

	utils.LogInfo("Contact %d created", contact.ID)
	s.publish(EventContactCreated, contact)
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, query models.ContactListQuery) (*ContactPage, error) {
	p := paginator.FromOptional(query.Page, query.Limit)
	filter := models.ContactFilter{
		Name:         query.Name,
		FavoriteOnly: query.Favorite != nil && *query.Favorite,
	}

	contacts, total, err := s.repo.List(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}

	return &ContactPage{
		Contacts: contacts,
		Metadata: p.Metadata(total),
	}, nil
}

func (s *ContactService) GetByID(ctx context.Context, id int) (*models.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the present fields of patch to contact id and returns the
// result. When the avatar changes, the previous managed file is removed in
// the background.
func (s *ContactService) Update(ctx context.Context, id int, patch models.ContactPatch, avatarFile *multipart.FileHeader) (*models.Contact, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch = patch.Normalized()

	var uploaded string
	if avatarFile != nil {
		avatar, err := s.saveAvatar(ctx, avatarFile)
		if err != nil {
			return nil, err
		}
		uploaded = avatar
		patch.Avatar = models.Some(avatar)
	} else if err := s.checkAvatarValue(patch.Avatar, existing.AvatarPath()); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.cleaner.Schedule(uploaded)
		return nil, err
	}

	updated := patch.ApplyTo(*existing)
	if previous := existing.AvatarPath(); previous != updated.AvatarPath() {
		s.cleaner.Schedule(previous)
	}

	s.publish(EventContactUpdated, &updated)
	return &updated, nil
}

// Delete removes contact id and returns it as it was before deletion.
func (s *ContactService) Delete(ctx context.Context, id int) (*models.Contact, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.cleaner.Schedule(existing.AvatarPath())

	utils.LogInfo("Contact %d deleted", id)
	s.publish(EventContactDeleted, existing)
	return existing, nil
}

func (s *ContactService) DeleteAll(ctx context.Context) error {
	avatars, err := s.repo.ListAvatars(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	for _, avatar := range avatars {
		s.cleaner.Schedule(avatar)
	}

	utils.LogInfo("All contacts deleted")
	s.publish(EventContactsDeleted, nil)
	return nil
}

// QRCode returns a PNG QR code of size pixels holding the contact's vCard.
func (s *ContactService) QRCode(ctx context.Context, id int, size int) ([]byte, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultQRCodeSize
	}
	return encodeQRCode(VCard(contact), size)
}
