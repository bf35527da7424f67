package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nixie-tech-llc/courier/internal/db"
	"github.com/nixie-tech-llc/courier/internal/http/api"
	"github.com/nixie-tech-llc/courier/internal/http/api/user/packets"
	"github.com/nixie-tech-llc/courier/internal/notify"
)

// MessageModule mounts the direct-message endpoints (JWT required).
// /message/sended keeps the route name older clients already call.
func MessageModule(store db.Store, notifier *notify.Notifier) api.Module {
	ctl := newMessageManager(store, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/new-message", ctl.createMessage)
		c.GET("/message/received", ctl.listReceived)
		c.GET("/message/sended", ctl.listSent)
	})
}

type MessageManager struct {
	store    db.Store
	notifier *notify.Notifier
}

func newMessageManager(store db.Store, notifier *notify.Notifier) *MessageManager {
	return &MessageManager{store: store, notifier: notifier}
}

// POST /user/new-message
func (m *MessageManager) createMessage(ctx *gin.Context, userID int) (any, *api.APIError) {
	var request packets.NewMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	recipient, err := m.store.GetUserByEmail(request.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "recipient not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not look up recipient"}
	}

	newMessage, err := m.store.CreateMessage(userID, recipient.ID, request.Title, request.Content)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create message"}
	}

	m.notifier.MessageSent(newMessage)

	return gin.H{"newMessage": packets.NewMessageResponse(newMessage)}, nil
}

// GET /user/message/received
func (m *MessageManager) listReceived(ctx *gin.Context, userID int) (any, *api.APIError) {
	messages, err := m.store.ListReceivedMessages(userID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list messages"}
	}
	return gin.H{"result": packets.NewMessageList(messages)}, nil
}

// GET /user/message/sended
func (m *MessageManager) listSent(ctx *gin.Context, userID int) (any, *api.APIError) {
	messages, err := m.store.ListSentMessages(userID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list messages"}
	}
	return gin.H{"result": packets.NewMessageList(messages)}, nil
}
