package endpoints_test

import (
	"database/sql"
	"sync"
	"time"

	"github.com/nixie-tech-llc/courier/internal/db"
	"github.com/nixie-tech-llc/courier/internal/model"
)

// memStore is an in-memory db.Store double so handler tests run without
// Postgres. It mirrors the store's contract: ErrEmailTaken on duplicate
// email, sql.ErrNoRows on misses, cascade delete of a user's messages.
type memStore struct {
	mu            sync.Mutex
	nextUserID    int
	nextMessageID int
	users         map[int]model.User
	messages      []model.Message
}

var _ db.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		nextUserID:    1,
		nextMessageID: 1,
		users:         make(map[int]model.User),
	}
}

func (s *memStore) CreateUser(name, email, hashedPassword string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return nil, db.ErrEmailTaken
		}
	}
	u := model.User{
		ID:             s.nextUserID,
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

func (s *memStore) GetUserByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) GetUserByID(id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (s *memStore) ListUsers() ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]model.User, 0, len(s.users))
	for id := 1; id < s.nextUserID; id++ {
		if u, ok := s.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *memStore) UpdateUserName(id int, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	u.Name = name
	s.users[id] = u
	return true, nil
}

func (s *memStore) DeleteUser(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)

	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.SenderID != id && m.RecipientID != id {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	return true, nil
}

func (s *memStore) CreateMessage(senderID, recipientID int, title, content string) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := model.Message{
		ID:          s.nextMessageID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Title:       title,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	s.nextMessageID++
	s.messages = append(s.messages, m)
	return &m, nil
}

func (s *memStore) ListReceivedMessages(userID int) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Message
	for _, m := range s.messages {
		if m.RecipientID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) ListSentMessages(userID int) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Message
	for _, m := range s.messages {
		if m.SenderID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}
