package services

import (
	"fmt"

	"message-lab/domain"
	"message-lab/errors"
	"message-lab/repositories"

	"github.com/google/uuid"
)

type IBookService interface {
	CreateBook(cmd domain.CreateBookCommand) (domain.Book, error)
	GetBookByID(id uuid.UUID) (domain.Book, error)
	UpdateBook(id uuid.UUID, cmd domain.UpdateBookCommand) (domain.Book, error)
	DeleteBook(id uuid.UUID) error
	GetAllBooks() ([]domain.Book, error)
	GetBooksByAuthor(author string) ([]domain.Book, error)
	GetBookByISBN(isbn string) (domain.Book, error)
	SearchBooks(keyword string) ([]domain.Book, error)
	GetAvailableBookCount() (int, error)
	GetRecentBooks(days int) ([]domain.Book, error)
}

type BookService struct {
	books repositories.IBookRepository
}

func NewBookService(books repositories.IBookRepository) *BookService {
	return &BookService{books: books}
}

func (s *BookService) CreateBook(cmd domain.CreateBookCommand) (domain.Book, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Book{}, fmt.Errorf("%w: %v", errors.ErrInvalidBook, err)
	}
	return s.books.Create(cmd)
}

func (s *BookService) GetBookByID(id uuid.UUID) (domain.Book, error) {
	return s.books.GetByID(id)
}

func (s *BookService) UpdateBook(id uuid.UUID, cmd domain.UpdateBookCommand) (domain.Book, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Book{}, fmt.Errorf("%w: %v", errors.ErrInvalidBook, err)
	}
	return s.books.Update(id, cmd)
}

func (s *BookService) DeleteBook(id uuid.UUID) error {
	return s.books.Delete(id)
}

func (s *BookService) GetAllBooks() ([]domain.Book, error) {
	return s.books.ListAll()
}

func (s *BookService) GetBooksByAuthor(author string) ([]domain.Book, error) {
	return s.books.FindByAuthor(author)
}

func (s *BookService) GetBookByISBN(isbn string) (domain.Book, error) {
	return s.books.FindByISBN(isbn)
}

func (s *BookService) SearchBooks(keyword string) ([]domain.Book, error) {
	return s.books.SearchByTitle(keyword)
}

func (s *BookService) GetAvailableBookCount() (int, error) {
	return s.books.CountAvailable()
}

func (s *BookService) GetRecentBooks(days int) ([]domain.Book, error) {
	return s.books.FindRecent(days)
}
