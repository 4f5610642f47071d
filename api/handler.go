package api

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"message-lab/domain"
	"message-lab/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createMessageRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type updateMessageRequest struct {
	Content string `json:"content"`
}

type createBookRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	ISBN   string  `json:"isbn"`
	Price  float64 `json:"price"`
}

type updateBookRequest struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	ISBN   string   `json:"isbn"`
	Price  *float64 `json:"price"`
}

// renderError maps the domain error taxonomy to HTTP status codes:
// validation failures are the client's fault, unknown ids are 404,
// anything else is a server error.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrMessageNotFound), stderrors.Is(err, errors.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	case stderrors.Is(err, errors.ErrInvalidMessage), stderrors.Is(err, errors.ErrInvalidBook):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	default:
		s.log.Error("Unexpected error", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal error"})
	}
}

func (s *Server) listMessages(c *gin.Context) {
	var (
		messages []domain.Message
		err      error
	)
	switch {
	case c.Query("author") != "":
		messages, err = s.messages.GetMessagesByAuthor(c.Query("author"))
	case c.Query("keyword") != "":
		messages, err = s.messages.SearchMessages(c.Query("keyword"))
	default:
		messages, err = s.messages.GetAllMessages()
	}
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": messages, "count": len(messages)})
}

func (s *Server) createMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid payload"})
		return
	}
	message, err := s.messages.CreateMessage(domain.CreateMessageCommand{
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": message})
}

func (s *Server) getMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return
	}
	message, err := s.messages.GetMessageByID(id)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": message})
}

func (s *Server) updateMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return
	}
	var req updateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid payload"})
		return
	}
	message, err := s.messages.UpdateMessage(id, domain.UpdateMessageCommand{Content: req.Content})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": message})
}

func (s *Server) deleteMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return
	}
	if err := s.messages.DeleteMessage(id); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) activeMessageCount(c *gin.Context) {
	count, err := s.messages.GetActiveMessageCount()
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": count})
}

func (s *Server) recentMessages(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid days"})
		return
	}
	messages, err := s.messages.GetRecentMessages(days)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": messages, "count": len(messages)})
}

func (s *Server) listBooks(c *gin.Context) {
	var (
		books []domain.Book
		err   error
	)
	switch {
	case c.Query("author") != "":
		books, err = s.books.GetBooksByAuthor(c.Query("author"))
	case c.Query("keyword") != "":
		books, err = s.books.SearchBooks(c.Query("keyword"))
	default:
		books, err = s.books.GetAllBooks()
	}
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": books, "count": len(books)})
}

func (s *Server) createBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid payload"})
		return
	}
	book, err := s.books.CreateBook(domain.CreateBookCommand{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
		Price:  req.Price,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": book})
}

func (s *Server) getBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return
	}
	book, err := s.books.GetBookByID(id)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": book})
}

func (s *Server) getBookByISBN(c *gin.Context) {
	book, err := s.books.GetBookByISBN(c.Param("isbn"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": book})
}

func (s *Server) updateBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return
	}
	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid payload"})
		return
	}
	book, err := s.books.UpdateBook(id, domain.UpdateBookCommand{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
		Price:  req.Price,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": book})
}

func (s *Server) deleteBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return
	}
	if err := s.books.DeleteBook(id); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) availableBookCount(c *gin.Context) {
	count, err := s.books.GetAvailableBookCount()
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": count})
}
