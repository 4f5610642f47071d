//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"message-lab/domain"
	"message-lab/errors"

	"github.com/samber/lo"
)

type IMessageRepository interface {
	Create(content, author string) (domain.Message, error)
	GetByID(id int64) (domain.Message, error)
	Update(id int64, content string) (domain.Message, error)
	Delete(id int64) error
	ListAll() ([]domain.Message, error)
	FindByAuthor(author string) ([]domain.Message, error)
	FindByKeyword(keyword string) ([]domain.Message, error)
	CountActive() (int, error)
	FindRecent(days int) ([]domain.Message, error)
}

// MessageRepository keeps the authoritative message collection in memory.
// A single mutex serializes every operation: the store is shared between
// the HTTP handlers and the statistics worker, and both must observe a
// consistent snapshot. Callers always receive value copies.
type MessageRepository struct {
	mu         sync.Mutex
	log        *slog.Logger
	maxContent int
	seq        int64
	messages   map[int64]domain.Message
	now        func() time.Time
}

func NewMessageRepository(log *slog.Logger, maxContentLength int) *MessageRepository {
	return &MessageRepository{
		log:        log,
		maxContent: maxContentLength,
		messages:   make(map[int64]domain.Message),
		now:        time.Now,
	}
}

// Create allocates the next id, stamps the creation date and stores the
// message as active. Content and author are required; content is capped
// at the configured length.
func (r *MessageRepository) Create(content, author string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(author) == "" {
		return domain.Message{}, fmt.Errorf("%w: content and author cannot be empty", errors.ErrInvalidMessage)
	}
	if utf8.RuneCountInString(content) > r.maxContent {
		return domain.Message{}, fmt.Errorf("%w: content exceeds %d characters", errors.ErrInvalidMessage, r.maxContent)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	message := domain.Message{
		ID:          r.seq,
		Content:     content,
		Author:      author,
		CreatedDate: r.now().UTC(),
		Active:      true,
	}
	r.messages[message.ID] = message
	r.log.Debug("Message stored", "id", message.ID, "author", message.Author)
	return message, nil
}

func (r *MessageRepository) GetByID(id int64) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: id %d", errors.ErrMessageNotFound, id)
	}
	return message, nil
}

// Update replaces the content and stamps the update date.
// Author, creation date and the active flag never change through this path.
func (r *MessageRepository) Update(id int64, content string) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: id %d", errors.ErrMessageNotFound, id)
	}
	message.Content = content
	message.UpdatedDate = lo.ToPtr(r.now().UTC())
	r.messages[id] = message
	return message, nil
}

func (r *MessageRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return fmt.Errorf("%w: id %d", errors.ErrMessageNotFound, id)
	}
	delete(r.messages, id)
	return nil
}

// ListAll returns every message, in no particular order.
func (r *MessageRepository) ListAll() ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo.Values(r.messages), nil
}

// FindByAuthor matches the author exactly, case-sensitively.
func (r *MessageRepository) FindByAuthor(author string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.Filter(lo.Values(r.messages), func(m domain.Message, _ int) bool {
		return m.Author == author
	}), nil
}

// FindByKeyword matches the content case-insensitively. A blank keyword
// falls back to the full listing, mirroring the search endpoint behavior.
func (r *MessageRepository) FindByKeyword(keyword string) ([]domain.Message, error) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return r.ListAll()
	}
	needle := strings.ToLower(trimmed)

	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.Filter(lo.Values(r.messages), func(m domain.Message, _ int) bool {
		return strings.Contains(strings.ToLower(m.Content), needle)
	}), nil
}

func (r *MessageRepository) CountActive() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.CountBy(lo.Values(r.messages), func(m domain.Message) bool {
		return m.Active
	}), nil
}

// FindRecent returns the active messages created within the last N days.
func (r *MessageRepository) FindRecent(days int) ([]domain.Message, error) {
	cutoff := r.now().UTC().AddDate(0, 0, -days)

	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.Filter(lo.Values(r.messages), func(m domain.Message, _ int) bool {
		return m.Active && m.CreatedDate.After(cutoff)
	}), nil
}
