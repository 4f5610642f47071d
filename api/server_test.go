package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"message-lab/repositories"
	"message-lab/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	messageService := services.NewMessageService(repositories.NewMessageRepository(log, 500))
	bookService := services.NewBookService(repositories.NewBookRepository(db, log))
	return NewRouter(log, messageService, bookService)
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func Test_Message_CRUD_Over_HTTP(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	// Create
	res := do(t, router, http.MethodPost, "/api/messages", `{"content":"hello","author":"Alice"}`)
	req.Equal(http.StatusCreated, res.Code)

	var created struct {
		Data struct {
			ID      int64  `json:"ID"`
			Content string `json:"Content"`
		} `json:"data"`
	}
	req.NoError(json.Unmarshal(res.Body.Bytes(), &created))
	req.Equal("hello", created.Data.Content)

	// Read
	res = do(t, router, http.MethodGet, fmt.Sprintf("/api/messages/%d", created.Data.ID), "")
	req.Equal(http.StatusOK, res.Code)

	// Update
	res = do(t, router, http.MethodPut, fmt.Sprintf("/api/messages/%d", created.Data.ID), `{"content":"edited"}`)
	req.Equal(http.StatusOK, res.Code)
	req.Contains(res.Body.String(), "edited")

	// List
	res = do(t, router, http.MethodGet, "/api/messages", "")
	req.Equal(http.StatusOK, res.Code)
	req.Contains(res.Body.String(), `"count":1`)

	// Delete
	res = do(t, router, http.MethodDelete, fmt.Sprintf("/api/messages/%d", created.Data.ID), "")
	req.Equal(http.StatusNoContent, res.Code)

	res = do(t, router, http.MethodGet, fmt.Sprintf("/api/messages/%d", created.Data.ID), "")
	req.Equal(http.StatusNotFound, res.Code)
}

func Test_Message_Error_Mapping(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	// Validation failures are 400
	res := do(t, router, http.MethodPost, "/api/messages", `{"content":"","author":"Alice"}`)
	req.Equal(http.StatusBadRequest, res.Code)

	res = do(t, router, http.MethodPost, "/api/messages", `{"content":"hello","author":""}`)
	req.Equal(http.StatusBadRequest, res.Code)

	// Unknown ids are 404
	res = do(t, router, http.MethodGet, "/api/messages/999", "")
	req.Equal(http.StatusNotFound, res.Code)

	res = do(t, router, http.MethodDelete, "/api/messages/999", "")
	req.Equal(http.StatusNotFound, res.Code)

	res = do(t, router, http.MethodPut, "/api/messages/999", `{"content":"x"}`)
	req.Equal(http.StatusNotFound, res.Code)

	// Garbage ids are 400
	res = do(t, router, http.MethodGet, "/api/messages/not-a-number", "")
	req.Equal(http.StatusBadRequest, res.Code)
}

func Test_Message_Queries_Over_HTTP(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	for _, body := range []string{
		`{"content":"release notes","author":"Alice"}`,
		`{"content":"lunch plans","author":"Bob"}`,
		`{"content":"release party","author":"Bob"}`,
	} {
		res := do(t, router, http.MethodPost, "/api/messages", body)
		req.Equal(http.StatusCreated, res.Code)
	}

	res := do(t, router, http.MethodGet, "/api/messages?author=Bob", "")
	req.Equal(http.StatusOK, res.Code)
	req.Contains(res.Body.String(), `"count":2`)

	res = do(t, router, http.MethodGet, "/api/messages?keyword=RELEASE", "")
	req.Equal(http.StatusOK, res.Code)
	req.Contains(res.Body.String(), `"count":2`)

	res = do(t, router, http.MethodGet, "/api/messages/count/active", "")
	req.Equal(http.StatusOK, res.Code)
	req.Contains(res.Body.String(), `"count":3`)

	res = do(t, router, http.MethodGet, "/api/messages/recent?days=7", "")
	req.Equal(http.StatusOK, res.Code)
	req.Contains(res.Body.String(), `"count":3`)
}

func Test_Book_CRUD_Over_HTTP(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	res := do(t, router, http.MethodPost, "/api/books",
		`{"title":"The Go Programming Language","author":"Donovan","isbn":"isbn-1","price":39.99}`)
	req.Equal(http.StatusCreated, res.Code)

	var created struct {
		Data struct {
			ID string `json:"ID"`
		} `json:"data"`
	}
	req.NoError(json.Unmarshal(res.Body.Bytes(), &created))
	req.NotEmpty(created.Data.ID)

	res = do(t, router, http.MethodGet, "/api/books/"+created.Data.ID, "")
	req.Equal(http.StatusOK, res.Code)

	res = do(t, router, http.MethodGet, "/api/books/isbn/isbn-1", "")
	req.Equal(http.StatusOK, res.Code)

	res = do(t, router, http.MethodPut, "/api/books/"+created.Data.ID, `{"price":29.99}`)
	req.Equal(http.StatusOK, res.Code)

	res = do(t, router, http.MethodGet, "/api/books/count/available", "")
	req.Equal(http.StatusOK, res.Code)
	req.Contains(res.Body.String(), `"count":1`)

	res = do(t, router, http.MethodDelete, "/api/books/"+created.Data.ID, "")
	req.Equal(http.StatusNoContent, res.Code)

	// Validation and not-found mapping
	res = do(t, router, http.MethodPost, "/api/books", `{"title":"","author":"Donovan"}`)
	req.Equal(http.StatusBadRequest, res.Code)

	res = do(t, router, http.MethodGet, "/api/books/c1f0b1f0-0000-0000-0000-000000000000", "")
	req.Equal(http.StatusNotFound, res.Code)
}
