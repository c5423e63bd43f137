package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/tokoprima/admin-api/internal/models"
)

// UserRepository handles data access for dashboard users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetAll returns all users ordered by name.
func (r *UserRepository) GetAll() ([]models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, last_active_at, created_at, updated_at
		FROM users
		ORDER BY name`

	var users []models.User
	if err := r.db.Select(&users, q); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns a single user by id.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `
		SELECT id, name, email, password_hash, role, last_active_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns a single user by email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `
		SELECT id, name, email, password_hash, role, last_active_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, last_active_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowx(query, user.Name, user.Email, user.PasswordHash, user.Role, user.LastActiveAt).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// Update updates an existing user.
func (r *UserRepository) Update(user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role = $4,
		    last_active_at = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`
	return r.db.QueryRowx(query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.LastActiveAt, user.ID,
	).Scan(&user.UpdatedAt)
}

// Delete deletes a user by ID.
func (r *UserRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	return err
}

// TouchLastActive updates only the last-active timestamp of a user.
// Returns sql.ErrNoRows when the user does not exist.
func (r *UserRepository) TouchLastActive(id int) error {
	res, err := r.db.Exec(`UPDATE users SET last_active_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
