package services

import (
	"strings"
	"testing"

	"message-lab/domain"
	"message-lab/errors"
	"message-lab/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_CreateBook_Rejects_Invalid_Commands(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repository := mocks.NewMockIBookRepository(ctrl)
	service := NewBookService(repository)

	_, err := service.CreateBook(domain.CreateBookCommand{Title: "", Author: "Knuth"})
	req.ErrorIs(err, errors.ErrInvalidBook)

	_, err = service.CreateBook(domain.CreateBookCommand{
		Title:  strings.Repeat("x", 201),
		Author: "Knuth",
	})
	req.ErrorIs(err, errors.ErrInvalidBook)

	_, err = service.CreateBook(domain.CreateBookCommand{Title: "t", Author: "a", Price: -1})
	req.ErrorIs(err, errors.ErrInvalidBook)
}

func Test_CreateBook_Delegates_To_Repository(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmd := domain.CreateBookCommand{Title: "t", Author: "a", ISBN: "isbn-1", Price: 10}
	expected := domain.Book{ID: uuid.New(), Title: "t", Author: "a", Available: true}

	repository := mocks.NewMockIBookRepository(ctrl)
	repository.EXPECT().Create(cmd).Return(expected, nil).Times(1)

	service := NewBookService(repository)
	created, err := service.CreateBook(cmd)
	req.NoError(err)
	req.Equal(expected, created)
}

func Test_BookService_Propagates_NotFound(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repository := mocks.NewMockIBookRepository(ctrl)
	repository.EXPECT().GetByID(id).Return(domain.Book{}, errors.ErrBookNotFound)

	service := NewBookService(repository)
	_, err := service.GetBookByID(id)
	req.ErrorIs(err, errors.ErrBookNotFound)
}
