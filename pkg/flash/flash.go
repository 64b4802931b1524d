// Package flash carries one-shot notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Level classifies a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

const pendingKey = "flash_pending"

// maxMessages bounds the cookie size.
const maxMessages = 8

// Message is a single user-visible notice.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Store reads and writes notices on the request/response pair.
type Store struct {
	cookieName string
	secure     bool
}

// NewStore constructs a Store for the given cookie name.
func NewStore(cookieName string, secure bool) *Store {
	if cookieName == "" {
		cookieName = "flash"
	}
	return &Store{cookieName: cookieName, secure: secure}
}

// Add queues a notice for the next rendered view, which may be this response
// or the one after a redirect.
func (s *Store) Add(c *gin.Context, level Level, text string) {
	messages := append(s.pending(c), Message{Level: level, Text: text})
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}
	c.Set(pendingKey, messages)
	s.write(c, messages)
}

// Success is shorthand for Add with LevelSuccess.
func (s *Store) Success(c *gin.Context, text string) {
	s.Add(c, LevelSuccess, text)
}

// Error is shorthand for Add with LevelError.
func (s *Store) Error(c *gin.Context, text string) {
	s.Add(c, LevelError, text)
}

// Pop returns every queued notice and clears the cookie.
func (s *Store) Pop(c *gin.Context) []Message {
	messages := s.pending(c)
	if len(messages) == 0 {
		return nil
	}
	c.Set(pendingKey, []Message(nil))
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return messages
}

func (s *Store) pending(c *gin.Context) []Message {
	if v, ok := c.Get(pendingKey); ok {
		if messages, ok := v.([]Message); ok {
			return messages
		}
	}
	raw, err := c.Cookie(s.cookieName)
	if err != nil || raw == "" {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}
	c.Set(pendingKey, messages)
	return messages
}

func (s *Store) write(c *gin.Context, messages []Message) {
	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
