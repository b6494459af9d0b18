package handlers

import (
	"errors"
	"net/http"

	"contacts-api/internal/apierror"
	"contacts-api/internal/models"
	"contacts-api/internal/utils"
	"contacts-api/internal/validation"
)

// respondWithError writes the envelope for err. Unrecognized errors become a
// 500 and are logged with their cause.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *validation.Error
		apiErr   *apierror.Error
		tooLarge *http.MaxBytesError
	)

	switch {
	case errors.As(err, &verr):
		items := make([]models.ErrorItem, 0, len(verr.Issues))
		for _, issue := range verr.Issues {
			items = append(items, models.ErrorItem{Field: issue.Field, Message: issue.Message})
		}
		models.RespondWithJSON(w, http.StatusBadRequest,
			models.NewFailResponse(verr.Error(), models.ValidationErrorData{Errors: items}))
		return
	case errors.Is(err, models.ErrContactNotFound):
		apiErr = apierror.ErrContactNotFound
	case errors.As(err, &tooLarge):
		apiErr = apierror.ErrPayloadTooLarge
	case errors.Is(err, validation.ErrMalformedBody):
		apiErr = apierror.ErrMalformedBody
	case errors.As(err, &apiErr):
	default:
		utils.LogError("%s %s failed: %v", r.Method, r.URL.Path, err)
		apiErr = apierror.ErrInternal
	}

	if apiErr.Err != nil && apiErr.Status >= http.StatusInternalServerError {
		utils.LogError("%s %s failed: %v", r.Method, r.URL.Path, apiErr.Err)
	}
	models.RespondWithJSON(w, apiErr.Status, models.NewStatusResponse(apiErr.Status, apiErr.Message, nil))
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, r, apierror.ErrResourceNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, r, apierror.ErrMethodNotAllowed)
}

func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, r, apierror.ErrTooManyRequests)
}
