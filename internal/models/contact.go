package models

import (
	"context"
	"errors"
)

type Contact struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Favorite bool    `json:"favorite"`
	Avatar   *string `json:"avatar"`
}

// AvatarPath returns the avatar or an empty string when none is set.
func (c *Contact) AvatarPath() string {
	if c == nil || c.Avatar == nil {
		return ""
	}
	return *c.Avatar
}

// ContactPatch carries the fields of a create or partial update payload.
// A field takes part in the write only when Set.
type ContactPatch struct {
	Name     Optional[string] `json:"name"`
	Email    Optional[string] `json:"email"`
	Address  Optional[string] `json:"address"`
	Phone    Optional[string] `json:"phone"`
	Favorite Optional[bool]   `json:"favorite"`
	Avatar   Optional[string] `json:"avatar"`
}

// Normalized drops text fields that are present but empty. Favorite is kept
// whenever present so an explicit false is still written.
func (p ContactPatch) Normalized() ContactPatch {
	for _, f := range []*Optional[string]{&p.Name, &p.Email, &p.Address, &p.Phone, &p.Avatar} {
		if f.Set && f.Value == "" {
			*f = Optional[string]{}
		}
	}
	return p
}

func (p ContactPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Email.Set && !p.Address.Set && !p.Phone.Set && !p.Favorite.Set && !p.Avatar.Set
}

// ApplyTo returns a copy of c overlaid with the fields set in p.
func (p ContactPatch) ApplyTo(c Contact) Contact {
	if p.Name.Set {
		c.Name = p.Name.Value
	}
	if p.Email.Set {
		c.Email = p.Email.Ptr()
	}
	if p.Address.Set {
		c.Address = p.Address.Ptr()
	}
	if p.Phone.Set {
		c.Phone = p.Phone.Ptr()
	}
	if p.Favorite.Set {
		c.Favorite = p.Favorite.Value
	}
	if p.Avatar.Set {
		c.Avatar = p.Avatar.Ptr()
	}
	return c
}

// ContactFilter narrows a listing. Name matches case-insensitively anywhere
// in the contact name.
type ContactFilter struct {
	Name         string
	FavoriteOnly bool
}

var ErrContactNotFound = errors.New("contact not found")

type ContactRepository interface {
	Create(ctx context.Context, patch ContactPatch) (*Contact, error)
	List(ctx context.Context, filter ContactFilter, limit, offset int) ([]*Contact, int, error)
	GetByID(ctx context.Context, id int) (*Contact, error)
	Update(ctx context.Context, id int, patch ContactPatch) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
	ListAvatars(ctx context.Context) ([]string, error)
}
