package packets

import (
	"time"

	"github.com/nixie-tech-llc/courier/internal/model"
)

// UserResponse mirrors model.User minus the password hash.
type UserResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// public profile lookup exposes the display name only
type ProfileResponse struct {
	Name string `json:"name"`
}

type MessageResponse struct {
	ID          int    `json:"id"`
	SenderID    int    `json:"senderId"`
	RecipientID int    `json:"recipientId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	CreatedAt   string `json:"createdAt"`
}

func NewMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Title:       m.Title,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// MessageListItem is one row of a received/sent listing.
type MessageListItem struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func NewMessageList(messages []model.Message) []MessageListItem {
	items := make([]MessageListItem, len(messages))
	for i, m := range messages {
		items[i] = MessageListItem{
			Title:     m.Title,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}
	return items
}
