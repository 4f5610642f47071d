package services

import (
	"fmt"

	"message-lab/domain"
	"message-lab/errors"
	"message-lab/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type IMessageService interface {
	CreateMessage(cmd domain.CreateMessageCommand) (domain.Message, error)
	GetMessageByID(id int64) (domain.Message, error)
	UpdateMessage(id int64, cmd domain.UpdateMessageCommand) (domain.Message, error)
	DeleteMessage(id int64) error
	GetAllMessages() ([]domain.Message, error)
	GetMessagesByAuthor(author string) ([]domain.Message, error)
	SearchMessages(keyword string) ([]domain.Message, error)
	GetActiveMessageCount() (int, error)
	GetRecentMessages(days int) ([]domain.Message, error)
}

// MessageService validates incoming commands and delegates to the store.
type MessageService struct {
	messages repositories.IMessageRepository
}

func NewMessageService(messages repositories.IMessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

func (s *MessageService) CreateMessage(cmd domain.CreateMessageCommand) (domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	return s.messages.Create(cmd.Content, cmd.Author)
}

func (s *MessageService) GetMessageByID(id int64) (domain.Message, error) {
	return s.messages.GetByID(id)
}

func (s *MessageService) UpdateMessage(id int64, cmd domain.UpdateMessageCommand) (domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	return s.messages.Update(id, cmd.Content)
}

func (s *MessageService) DeleteMessage(id int64) error {
	return s.messages.Delete(id)
}

func (s *MessageService) GetAllMessages() ([]domain.Message, error) {
	return s.messages.ListAll()
}

func (s *MessageService) GetMessagesByAuthor(author string) ([]domain.Message, error) {
	return s.messages.FindByAuthor(author)
}

func (s *MessageService) SearchMessages(keyword string) ([]domain.Message, error) {
	return s.messages.FindByKeyword(keyword)
}

func (s *MessageService) GetActiveMessageCount() (int, error) {
	return s.messages.CountActive()
}

func (s *MessageService) GetRecentMessages(days int) ([]domain.Message, error) {
	return s.messages.FindRecent(days)
}
