package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/nixie-tech-llc/courier/internal/model"
)

// inserts a new user, returns the full row. Returns ErrEmailTaken when the
// email column's unique constraint rejects the insert.
func (s *pgStore) CreateUser(name, email, hashedPassword string) (*model.User, error) {
	query := `
	INSERT INTO users (name, email, hashed_password, created_at)
	VALUES ($1, $2, $3, now())
	RETURNING id, name, email, hashed_password, created_at;
	`
	var u model.User
	err := s.db.Get(&u, query, name, email, hashedPassword)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrEmailTaken
		}
		log.Error().Msg("failed to create user")
		return nil, err
	}
	return &u, nil
}

// fetches a user by email. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, name, email, hashed_password, created_at
	FROM users
	WHERE email = $1;
	`
	err := s.db.Get(&u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}

// fetches a user by ID. Returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, name, email, hashed_password, created_at
	FROM users
	WHERE id = $1;
	`
	err := s.db.Get(&u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

// returns every user row, unfiltered.
func (s *pgStore) ListUsers() ([]model.User, error) {
	var users []model.User
	query := `
	SELECT id, name, email, hashed_password, created_at
	FROM users
	ORDER BY id;
	`
	if err := s.db.Select(&users, query); err != nil {
		log.Error().Msg("failed to list users")
		return nil, err
	}
	return users, nil
}

// updates a user's display name. The bool reports whether a row matched,
// so a single conditional update replaces a lookup-then-write pair.
func (s *pgStore) UpdateUserName(id int, name string) (bool, error) {
	query := `
	UPDATE users
	SET name = $2
	WHERE id = $1;
	`
	res, err := s.db.Exec(query, id, name)
	if err != nil {
		log.Error().Msg("failed to update user name - exec")
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		log.Error().Msg("failed to update user name - rows affected")
		return false, err
	}
	return rows > 0, nil
}

// removes a user row. Messages in either role go with it via FK cascade.
func (s *pgStore) DeleteUser(id int) (bool, error) {
	query := `
	DELETE FROM users
	WHERE id = $1;
	`
	res, err := s.db.Exec(query, id)
	if err != nil {
		log.Error().Msg("failed to delete user - exec")
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		log.Error().Msg("failed to delete user - rows affected")
		return false, err
	}
	return rows > 0, nil
}
