package handlers

import "contacts-api/internal/validation"

var contactFields = map[string]validation.Kind{
	"name":       validation.String,
	"email":      validation.String,
	"address":    validation.String,
	"phone":      validation.String,
	"favorite":   validation.Bool,
	"avatar":     validation.String,
	"avatarFile": validation.Image,
}

func withFields(base map[string]validation.Kind, extra map[string]validation.Kind) map[string]validation.Kind {
	out := make(map[string]validation.Kind, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

var (
	contactIDSchema = validation.NewSchema(map[string]validation.Kind{
		"id": validation.Int,
	})

	listContactsSchema = validation.NewSchema(map[string]validation.Kind{
		"name":     validation.String,
		"favorite": validation.Bool,
		"page":     validation.Int,
		"limit":    validation.Int,
	})

	createContactSchema = validation.NewSchema(contactFields)

	updateContactSchema = validation.NewSchema(withFields(contactFields, map[string]validation.Kind{
		"id": validation.Int,
	}))

	qrCodeSchema = validation.NewSchema(map[string]validation.Kind{
		"id":   validation.Int,
		"size": validation.Int,
	})
)
