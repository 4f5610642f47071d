//go:generate go run go.uber.org/mock/mockgen -source=book.go -destination=../mocks/mock_book_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"message-lab/domain"
	"message-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const bookPrefix = "book:"

type IBookRepository interface {
	Create(cmd domain.CreateBookCommand) (domain.Book, error)
	GetByID(id uuid.UUID) (domain.Book, error)
	Update(id uuid.UUID, patch domain.UpdateBookCommand) (domain.Book, error)
	Delete(id uuid.UUID) error
	ListAll() ([]domain.Book, error)
	FindByAuthor(author string) ([]domain.Book, error)
	FindByISBN(isbn string) (domain.Book, error)
	SearchByTitle(keyword string) ([]domain.Book, error)
	CountAvailable() (int, error)
	FindRecent(days int) ([]domain.Book, error)
}

// BookRepository persists the catalog in BadgerDB under "book:{uuid}" keys.
// The database is opened by the composition root, in-memory by default.
type BookRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewBookRepository(db *badger.DB, log *slog.Logger) *BookRepository {
	return &BookRepository{db: db, log: log, now: time.Now}
}

// diskBook is the stored representation, timestamps as unix nanoseconds.
type diskBook struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn,omitempty"`
	Price       float64 `json:"price"`
	CreatedDate int64  `json:"created_date"`
	UpdatedDate *int64 `json:"updated_date,omitempty"`
	Available   bool   `json:"available"`
}

func (b *BookRepository) Create(cmd domain.CreateBookCommand) (domain.Book, error) {
	book := domain.Book{
		ID:          uuid.New(),
		Title:       cmd.Title,
		Author:      cmd.Author,
		ISBN:        cmd.ISBN,
		Price:       cmd.Price,
		CreatedDate: b.now().UTC(),
		Available:   true,
	}
	if err := b.put(book); err != nil {
		return domain.Book{}, err
	}
	b.log.Debug("Book stored", "id", book.ID, "title", book.Title)
	return book, nil
}

func (b *BookRepository) GetByID(id uuid.UUID) (domain.Book, error) {
	var book domain.Book
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bookKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			book, err = toBook(val)
			return err
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Book{}, fmt.Errorf("%w: id %s", errors.ErrBookNotFound, id)
	}
	if err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

// Update applies the non-empty fields of the patch and stamps the update date.
func (b *BookRepository) Update(id uuid.UUID, patch domain.UpdateBookCommand) (domain.Book, error) {
	book, err := b.GetByID(id)
	if err != nil {
		return domain.Book{}, err
	}

	if patch.Title != "" {
		book.Title = patch.Title
	}
	if patch.Author != "" {
		book.Author = patch.Author
	}
	if patch.ISBN != "" {
		book.ISBN = patch.ISBN
	}
	if patch.Price != nil {
		book.Price = *patch.Price
	}
	book.UpdatedDate = lo.ToPtr(b.now().UTC())

	if err := b.put(book); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

func (b *BookRepository) Delete(id uuid.UUID) error {
	if _, err := b.GetByID(id); err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(bookKey(id))
	})
}

// ListAll walks the "book:" prefix. The catalog is small, a full scan
// is the storage model here, not an optimization target.
func (b *BookRepository) ListAll() ([]domain.Book, error) {
	var books []domain.Book
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(bookPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				book, err := toBook(val)
				if err != nil {
					return err
				}
				books = append(books, book)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return books, err
}

func (b *BookRepository) FindByAuthor(author string) ([]domain.Book, error) {
	books, err := b.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(books, func(book domain.Book, _ int) bool {
		return book.Author == author
	}), nil
}

func (b *BookRepository) FindByISBN(isbn string) (domain.Book, error) {
	books, err := b.ListAll()
	if err != nil {
		return domain.Book{}, err
	}
	book, found := lo.Find(books, func(book domain.Book) bool {
		return book.ISBN == isbn
	})
	if !found {
		return domain.Book{}, fmt.Errorf("%w: isbn %s", errors.ErrBookNotFound, isbn)
	}
	return book, nil
}

// SearchByTitle matches titles case-insensitively, falling back to the
// full listing on a blank keyword.
func (b *BookRepository) SearchByTitle(keyword string) ([]domain.Book, error) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return b.ListAll()
	}
	needle := strings.ToLower(trimmed)

	books, err := b.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(books, func(book domain.Book, _ int) bool {
		return strings.Contains(strings.ToLower(book.Title), needle)
	}), nil
}

func (b *BookRepository) CountAvailable() (int, error) {
	books, err := b.ListAll()
	if err != nil {
		return 0, err
	}
	return lo.CountBy(books, func(book domain.Book) bool {
		return book.Available
	}), nil
}

func (b *BookRepository) FindRecent(days int) ([]domain.Book, error) {
	cutoff := b.now().UTC().AddDate(0, 0, -days)
	books, err := b.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Filter(books, func(book domain.Book, _ int) bool {
		return book.Available && book.CreatedDate.After(cutoff)
	}), nil
}

func (b *BookRepository) put(book domain.Book) error {
	bytes, err := json.Marshal(fromBook(book))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bookKey(book.ID), bytes)
	})
}

func bookKey(id uuid.UUID) []byte {
	return []byte(bookPrefix + id.String())
}

func fromBook(book domain.Book) diskBook {
	disk := diskBook{
		ID:          book.ID.String(),
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Price:       book.Price,
		CreatedDate: book.CreatedDate.UnixNano(),
		Available:   book.Available,
	}
	if book.UpdatedDate != nil {
		disk.UpdatedDate = lo.ToPtr(book.UpdatedDate.UnixNano())
	}
	return disk
}

func toBook(val []byte) (domain.Book, error) {
	var disk diskBook
	if err := json.Unmarshal(val, &disk); err != nil {
		return domain.Book{}, err
	}
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Book{}, err
	}
	book := domain.Book{
		ID:          parsedID,
		Title:       disk.Title,
		Author:      disk.Author,
		ISBN:        disk.ISBN,
		Price:       disk.Price,
		CreatedDate: time.Unix(0, disk.CreatedDate).UTC(),
		Available:   disk.Available,
	}
	if disk.UpdatedDate != nil {
		book.UpdatedDate = lo.ToPtr(time.Unix(0, *disk.UpdatedDate).UTC())
	}
	return book, nil
}
