package models

import "mime/multipart"

type ContactIDParams struct {
	ID int `json:"id" validate:"min=1" example:"1"`
}

type ContactListQuery struct {
	Name     string `json:"name" validate:"omitempty,max=255" example:"ann"`
	Favorite *bool  `json:"favorite" example:"true"`
	Page     *int   `json:"page" validate:"omitempty,min=1" example:"1"`
	Limit    *int   `json:"limit" validate:"omitempty,min=1" example:"5"`
}

// ContactFields are the writable contact columns shared by create and update.
type ContactFields struct {
	Email    string `json:"email" validate:"omitempty,email,max=255" example:"ann@example.com"`
	Address  string `json:"address" validate:"omitempty,max=255" example:"12 Main St"`
	Phone    string `json:"phone" validate:"omitempty,phone" example:"+1 (555) 010-2030"`
	Favorite *bool  `json:"favorite" example:"false"`
	Avatar   string `json:"avatar" validate:"omitempty,max=255,avatar" example:"/public/uploads/3f1c.png"`

	AvatarFile *multipart.FileHeader `json:"-" swaggerignore:"true"`
}

// AttachFile receives uploaded files from the validation layer.
func (f *ContactFields) AttachFile(field string, fh *multipart.FileHeader) {
	if field == "avatarFile" {
		f.AvatarFile = fh
	}
}

func (f *ContactFields) patch(name string) ContactPatch {
	p := ContactPatch{
		Name:    Optional[string]{Value: name, Set: true},
		Email:   Optional[string]{Value: f.Email, Set: true},
		Address: Optional[string]{Value: f.Address, Set: true},
		Phone:   Optional[string]{Value: f.Phone, Set: true},
		Avatar:  Optional[string]{Value: f.Avatar, Set: true},
	}
	if f.Favorite != nil {
		p.Favorite = Some(*f.Favorite)
	}
	return p.Normalized()
}

type ContactCreateRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255" example:"Ann Lee"`
	ContactFields
}

func (r *ContactCreateRequest) Patch() ContactPatch {
	return r.patch(r.Name)
}

type ContactUpdateRequest struct {
	ID   int    `json:"id" validate:"min=1" example:"1"`
	Name string `json:"name" validate:"omitempty,min=2,max=255" example:"Ann Lee"`
	ContactFields
}

func (r *ContactUpdateRequest) Patch() ContactPatch {
	return r.patch(r.Name)
}

type ContactQRCodeParams struct {
	ID   int  `json:"id" validate:"min=1" example:"1"`
	Size *int `json:"size" validate:"omitempty,min=64,max=1024" example:"256"`
}
