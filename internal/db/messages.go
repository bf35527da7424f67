package db

import (
	"github.com/rs/zerolog/log"

	"github.com/nixie-tech-llc/courier/internal/model"
)

// inserts a new message, returns the full row. Messages are never
// updated or deleted here.
func (s *pgStore) CreateMessage(senderID, recipientID int, title, content string) (*model.Message, error) {
	query := `
	INSERT INTO messages (sender_id, recipient_id, title, content, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, sender_id, recipient_id, title, content, created_at;
	`
	var m model.Message
	err := s.db.Get(&m, query, senderID, recipientID, title, content)
	if err != nil {
		log.Error().Msg("failed to create message")
		return nil, err
	}
	return &m, nil
}

// fetches every message addressed to the user, oldest first.
func (s *pgStore) ListReceivedMessages(userID int) ([]model.Message, error) {
	var messages []model.Message
	query := `
	SELECT id, sender_id, recipient_id, title, content, created_at
	FROM messages
	WHERE recipient_id = $1
	ORDER BY created_at;
	`
	if err := s.db.Select(&messages, query, userID); err != nil {
		log.Error().Msg("failed to list received messages")
		return nil, err
	}
	return messages, nil
}

// fetches every message authored by the user, oldest first.
func (s *pgStore) ListSentMessages(userID int) ([]model.Message, error) {
	var messages []model.Message
	query := `
	SELECT id, sender_id, recipient_id, title, content, created_at
	FROM messages
	WHERE sender_id = $1
	ORDER BY created_at;
	`
	if err := s.db.Select(&messages, query, userID); err != nil {
		log.Error().Msg("failed to list sent messages")
		return nil, err
	}
	return messages, nil
}
