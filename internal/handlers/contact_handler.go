package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"contacts-api/internal/models"
	"contacts-api/internal/services"
	"contacts-api/internal/validation"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// parse validates the merged request input against schema into dst.
func parse(r *http.Request, schema *validation.Schema, dst interface{}) error {
	in, err := validation.FromRequest(r, mux.Vars(r))
	if err != nil {
		return err
	}
	return schema.Parse(in, dst)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	models.RespondWithJSON(w, http.StatusOK, models.NewSuccessResponse("", nil))
}

// @Summary List contacts
// @Description Paginated list, optionally filtered by a case-insensitive name fragment and favorites
// @Tags contacts
// @Produce json
// @Param name query string false "Name fragment"
// @Param favorite query boolean false "Only favorites when true"
// @Param page query integer false "Page number" default(1)
// @Param limit query integer false "Page size" default(5)
// @Success 200 {object} models.APIResponse{data=services.ContactPage}
// @Failure 400 {object} models.APIResponse{data=models.ValidationErrorData}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/contacts [get]
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	var query models.ContactListQuery
	if err := parse(r, listContactsSchema, &query); err != nil {
		respondWithError(w, r, err)
		return
	}

	page, err := h.contacts.List(r.Context(), query)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	models.RespondWithJSON(w, http.StatusOK, models.NewSuccessResponse("", page))
}

// @Summary Create a contact
// @Tags contacts
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param contact body models.ContactCreateRequest true "Contact"
// @Param avatarFile formData file false "Avatar image"
// @Success 201 {object} models.APIResponse{data=models.ContactData}
// @Failure 400 {object} models.APIResponse{data=models.ValidationErrorData}
// @Failure 413 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/contacts [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactCreateRequest
	if err := parse(r, createContactSchema, &req); err != nil {
		respondWithError(w, r, err)
		return
	}

	contact, err := h.contacts.Create(r.Context(), req.Patch(), req.AvatarFile)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	models.RespondWithJSON(w, http.StatusCreated,
		models.NewSuccessResponse("", models.ContactData{Contact: contact}))
}

// @Summary Delete all contacts
// @Tags contacts
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/contacts [delete]
func (h *ContactHandler) DeleteAllContacts(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.DeleteAll(r.Context()); err != nil {
		respondWithError(w, r, err)
		return
	}
	models.RespondWithJSON(w, http.StatusOK, models.NewSuccessResponse("All contacts deleted", nil))
}

// @Summary Get a contact
// @Tags contacts
// @Produce json
// @Param id path integer true "Contact ID"
// @Success 200 {object} models.APIResponse{data=models.ContactData}
// @Failure 400 {object} models.APIResponse{data=models.ValidationErrorData}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/contacts/{id} [get]
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	var params models.ContactIDParams
	if err := parse(r, contactIDSchema, &params); err != nil {
		respondWithError(w, r, err)
		return
	}

	contact, err := h.contacts.GetByID(r.Context(), params.ID)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	models.RespondWithJSON(w, http.StatusOK, models.NewSuccessResponse("", models.ContactData{Contact: contact}))
}

// @Summary Update a contact
// @Description Only the fields present in the request are changed
// @Tags contacts
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param id path integer true "Contact ID"
// @Param contact body models.ContactFields true "Fields to change"
// @Param avatarFile formData file false "Avatar image"
// @Success 200 {object} models.APIResponse{data=models.ContactData}
// @Failure 400 {object} models.APIResponse{data=models.ValidationErrorData}
// @Failure 404 {object} models.APIResponse
// @Failure 413 {object} models.APIResponse
// @Router /api/v1/contacts/{id} [put]
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactUpdateRequest
	if err := parse(r, updateContactSchema, &req); err != nil {
		respondWithError(w, r, err)
		return
	}

	contact, err := h.contacts.Update(r.Context(), req.ID, req.Patch(), req.AvatarFile)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	models.RespondWithJSON(w, http.StatusOK, models.NewSuccessResponse("", models.ContactData{Contact: contact}))
}

// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Param id path integer true "Contact ID"
// @Success 200 {object} models.APIResponse{data=models.ContactData}
// @Failure 400 {object} models.APIResponse{data=models.ValidationErrorData}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	var params models.ContactIDParams
	if err := parse(r, contactIDSchema, &params); err != nil {
		respondWithError(w, r, err)
		return
	}

	contact, err := h.contacts.Delete(r.Context(), params.ID)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contact deleted", models.ContactData{Contact: contact}))
}

// @Summary Contact QR code
// @Description PNG QR code holding the contact as a vCard
// @Tags contacts
// @Produce png
// @Param id path integer true "Contact ID"
// @Param size query integer false "Image size in pixels" default(256)
// @Success 200 {file} binary
// @Failure 400 {object} models.APIResponse{data=models.ValidationErrorData}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/contacts/{id}/qrcode [get]
func (h *ContactHandler) GetContactQRCode(w http.ResponseWriter, r *http.Request) {
	var params models.ContactQRCodeParams
	if err := parse(r, qrCodeSchema, &params); err != nil {
		respondWithError(w, r, err)
		return
	}

	size := 0
	if params.Size != nil {
		size = *params.Size
	}
	png, err := h.contacts.QRCode(r.Context(), params.ID, size)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
