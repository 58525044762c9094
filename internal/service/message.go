package service

import (
	"context"

	"github.com/palengke-dev/palengke/internal/domain"
)

type MessageService interface {
	Send(ctx context.Context, data domain.MessageCreationData) (domain.Message, error)
}

type MessageStorage interface {
	CreateMessage(ctx context.Context, data domain.MessageCreationData) (domain.Message, error)
}

type Message struct {
	storage   MessageStorage
	sanitizer TextSanitizer
}

func NewMessage(storage MessageStorage, sanitizer TextSanitizer) MessageService {
	return &Message{storage, sanitizer}
}

func (m *Message) Send(ctx context.Context, data domain.MessageCreationData) (domain.Message, error) {
	data.Text = m.sanitizer.Clean(data.Text)
	return m.storage.CreateMessage(ctx, data)
}
