// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nixie-tech-llc/courier/internal/model"
)

// ErrEmailTaken is returned by CreateUser when the email already has a row.
// The users.email UNIQUE constraint makes the check race-free.
var ErrEmailTaken = errors.New("email already registered")

type Store interface {
	// user functions
	CreateUser(name, email, hashedPassword string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUserName(id int, name string) (bool, error)
	DeleteUser(id int) (bool, error)

	// message functions
	CreateMessage(senderID, recipientID int, title, content string) (*model.Message, error)
	ListReceivedMessages(userID int) ([]model.Message, error)
	ListSentMessages(userID int) ([]model.Message, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
