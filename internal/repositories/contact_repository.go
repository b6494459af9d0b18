package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"contacts-api/internal/models"
	"contacts-api/internal/utils"
)

const contactColumns = `id, name, email, address, phone, favorite, avatar`

type SQLContactRepository struct {
	db *sql.DB
}

func NewSQLContactRepository(db *sql.DB) *SQLContactRepository {
	return &SQLContactRepository{db: db}
}

type column struct {
	name  string
	value interface{}
}

// patchColumns lists the columns set in p, in table order.
func patchColumns(p models.ContactPatch) []column {
	var cols []column
	if p.Name.Set {
		cols = append(cols, column{"name", p.Name.Value})
	}
	if p.Email.Set {
		cols = append(cols, column{"email", utils.NullString(p.Email.Value)})
	}
	if p.Address.Set {
		cols = append(cols, column{"address", utils.NullString(p.Address.Value)})
	}
	if p.Phone.Set {
		cols = append(cols, column{"phone", utils.NullString(p.Phone.Value)})
	}
	if p.Favorite.Set {
		cols = append(cols, column{"favorite", utils.BoolToInt(p.Favorite.Value)})
	}
	if p.Avatar.Set {
		cols = append(cols, column{"avatar", utils.NullString(p.Avatar.Value)})
	}
	return cols
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row rowScanner, extra ...interface{}) (*models.Contact, error) {
	contact := &models.Contact{}
	var email, address, phone, avatar sql.NullString
	dest := append(extra, &contact.ID, &contact.Name, &email, &address, &phone, &contact.Favorite, &avatar)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	contact.Email = utils.StringPtr(email)
	contact.Address = utils.StringPtr(address)
	contact.Phone = utils.StringPtr(phone)
	contact.Avatar = utils.StringPtr(avatar)
	return contact, nil
}

// Create inserts the fields set in patch and returns the stored contact.
func (r *SQLContactRepository) Create(ctx context.Context, patch models.ContactPatch) (*models.Contact, error) {
	cols := patchColumns(patch)
	if len(cols) == 0 {
		return nil, errors.New("error creating contact: no fields to insert")
	}

	names := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, c := range cols {
		names[i] = c.name
		args[i] = c.value
	}
	query := fmt.Sprintf("INSERT INTO contacts (%s) VALUES (%s)",
		strings.Join(names, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error creating contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error getting last insert id: %w", err)
	}

	contact := patch.ApplyTo(models.Contact{ID: int(id)})
	return &contact, nil
}

// List returns one page of contacts matching filter ordered by id, with the
// number of matching rows.
func (r *SQLContactRepository) List(ctx context.Context, filter models.ContactFilter, limit, offset int) ([]*models.Contact, int, error) {
	where, args := filterClause(filter)

	contacts, total, err := r.listPage(ctx, where, args, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	// The window count comes back with the rows, so a page past the end
	// needs its own count.
	if len(contacts) == 0 && offset > 0 {
		query := "SELECT COUNT(id) FROM contacts" + where
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("error counting contacts: %w", err)
		}
	}
	return contacts, total, nil
}

// maxPrealloc caps the slice capacity reserved for a page; limit itself is
// unbounded.
const maxPrealloc = 100

func (r *SQLContactRepository) listPage(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*models.Contact, int, error) {
	query := `SELECT COUNT(id) OVER() AS record_count, ` + contactColumns + `
		FROM contacts` + where + `
		ORDER BY id ASC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0, min(max(limit, 0), maxPrealloc))
	total := 0
	for rows.Next() {
		contact, err := scanContact(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contacts: %w", err)
	}
	return contacts, total, nil
}

func filterClause(filter models.ContactFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if filter.Name != "" {
		conds = append(conds, `LOWER(name) LIKE ? ESCAPE '!'`)
		args = append(args, "%"+escapeLike(strings.ToLower(filter.Name))+"%")
	}
	if filter.FavoriteOnly {
		conds = append(conds, "favorite = ?")
		args = append(args, 1)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *SQLContactRepository) GetByID(ctx context.Context, id int) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting contact: %w", err)
	}
	return contact, nil
}

// Update writes the fields set in patch. An empty patch issues no statement.
func (r *SQLContactRepository) Update(ctx context.Context, id int, patch models.ContactPatch) error {
	cols := patchColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	sets := make([]string, len(cols))
	args := make([]interface{}, 0, len(cols)+1)
	for i, c := range cols {
		sets[i] = c.name + " = ?"
		args = append(args, c.value)
	}
	args = append(args, id)

	query := "UPDATE contacts SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error updating contact: %w", err)
	}
	return nil
}

func (r *SQLContactRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("error deleting contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrContactNotFound
	}
	return nil
}

func (r *SQLContactRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return fmt.Errorf("error deleting contacts: %w", err)
	}
	return nil
}

// ListAvatars returns the avatar of every contact that has one.
func (r *SQLContactRepository) ListAvatars(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT avatar FROM contacts WHERE avatar IS NOT NULL AND avatar <> ''")
	if err != nil {
		return nil, fmt.Errorf("error listing avatars: %w", err)
	}
	defer rows.Close()

	var avatars []string
	for rows.Next() {
		var avatar string
		if err := rows.Scan(&avatar); err != nil {
			return nil, fmt.Errorf("error scanning avatar: %w", err)
		}
		avatars = append(avatars, avatar)
	}
	return avatars, rows.Err()
}
