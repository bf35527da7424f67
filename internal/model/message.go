package model

import "time"

// Message is a direct message between two users. Rows are immutable
// once created; senderId/recipientId reference users.id.
type Message struct {
	ID          int       `db:"id"`
	SenderID    int       `db:"sender_id"`
	RecipientID int       `db:"recipient_id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	CreatedAt   time.Time `db:"created_at"`
}
