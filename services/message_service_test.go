package services

import (
	"strings"
	"testing"

	"message-lab/domain"
	"message-lab/errors"
	"message-lab/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_CreateMessage_Rejects_Invalid_Commands(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The repository must never be reached with an invalid command
	repository := mocks.NewMockIMessageRepository(ctrl)
	service := NewMessageService(repository)

	_, err := service.CreateMessage(domain.CreateMessageCommand{Content: "", Author: "Alice"})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	_, err = service.CreateMessage(domain.CreateMessageCommand{Content: "hello", Author: ""})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	_, err = service.CreateMessage(domain.CreateMessageCommand{
		Content: strings.Repeat("x", 501),
		Author:  "Alice",
	})
	req.ErrorIs(err, errors.ErrInvalidMessage)
}

func Test_CreateMessage_Delegates_To_Repository(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mocks.NewMockIMessageRepository(ctrl)
	expected := domain.Message{ID: 1, Content: "hello", Author: "Alice", Active: true}
	repository.EXPECT().Create("hello", "Alice").Return(expected, nil).Times(1)

	service := NewMessageService(repository)
	created, err := service.CreateMessage(domain.CreateMessageCommand{Content: "hello", Author: "Alice"})
	req.NoError(err)
	req.Equal(expected, created)
}

func Test_UpdateMessage_Rejects_Empty_Content(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mocks.NewMockIMessageRepository(ctrl)
	service := NewMessageService(repository)

	_, err := service.UpdateMessage(1, domain.UpdateMessageCommand{Content: ""})
	req.ErrorIs(err, errors.ErrInvalidMessage)
}

func Test_Service_Propagates_NotFound(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mocks.NewMockIMessageRepository(ctrl)
	repository.EXPECT().GetByID(int64(42)).Return(domain.Message{}, errors.ErrMessageNotFound)
	repository.EXPECT().Delete(int64(42)).Return(errors.ErrMessageNotFound)

	service := NewMessageService(repository)

	_, err := service.GetMessageByID(42)
	req.ErrorIs(err, errors.ErrMessageNotFound)
	req.ErrorIs(service.DeleteMessage(42), errors.ErrMessageNotFound)
}

func Test_Search_And_Queries_Delegate(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mocks.NewMockIMessageRepository(ctrl)
	repository.EXPECT().FindByKeyword("go").Return([]domain.Message{{ID: 1}}, nil)
	repository.EXPECT().FindByAuthor("Alice").Return([]domain.Message{{ID: 1}}, nil)
	repository.EXPECT().CountActive().Return(3, nil)
	repository.EXPECT().FindRecent(7).Return([]domain.Message{{ID: 1}}, nil)

	service := NewMessageService(repository)

	found, err := service.SearchMessages("go")
	req.NoError(err)
	req.Len(found, 1)

	byAuthor, err := service.GetMessagesByAuthor("Alice")
	req.NoError(err)
	req.Len(byAuthor, 1)

	count, err := service.GetActiveMessageCount()
	req.NoError(err)
	req.Equal(3, count)

	recent, err := service.GetRecentMessages(7)
	req.NoError(err)
	req.Len(recent, 1)
}
