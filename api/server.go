// Package api exposes the message board over HTTP. It is a thin layer:
// request decoding and status-code mapping only, the behavior lives in
// the services and repositories.
package api

import (
	"log/slog"

	"message-lab/services"

	"github.com/gin-gonic/gin"
)

type Server struct {
	log      *slog.Logger
	messages services.IMessageService
	books    services.IBookService
}

// NewRouter builds the Gin engine with every route registered.
// The caller owns the http.Server wrapping it.
func NewRouter(log *slog.Logger, messages services.IMessageService, books services.IBookService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{log: log, messages: messages, books: books}

	messageRoutes := router.Group("/api/messages")
	messageRoutes.GET("", s.listMessages)
	messageRoutes.POST("", s.createMessage)
	messageRoutes.GET("/count/active", s.activeMessageCount)
	messageRoutes.GET("/recent", s.recentMessages)
	messageRoutes.GET("/:id", s.getMessage)
	messageRoutes.PUT("/:id", s.updateMessage)
	messageRoutes.DELETE("/:id", s.deleteMessage)

	bookRoutes := router.Group("/api/books")
	bookRoutes.GET("", s.listBooks)
	bookRoutes.POST("", s.createBook)
	bookRoutes.GET("/count/available", s.availableBookCount)
	bookRoutes.GET("/isbn/:isbn", s.getBookByISBN)
	bookRoutes.GET("/:id", s.getBook)
	bookRoutes.PUT("/:id", s.updateBook)
	bookRoutes.DELETE("/:id", s.deleteBook)

	return router
}
