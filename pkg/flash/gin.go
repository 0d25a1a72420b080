package flash

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CookieName = "catalog_flash"
	contextKey = "flash_store"
	TTL        = 5 * time.Minute
)

// Middleware exposes store to Add and Consume for the rest of the request.
func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, store)
		c.Next()
	}
}

func storeFrom(c *gin.Context) Store {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	s, _ := v.(Store)
	return s
}

// Add queues a message for the next page this client renders.
func Add(c *gin.Context, category, text string) {
	s := storeFrom(c)
	if s == nil {
		return
	}
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		token = uuid.NewString()
	}
	s.Add(token, Message{Category: category, Text: text}, TTL)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Consume returns and clears the messages queued for this client.
func Consume(c *gin.Context) []Message {
	s := storeFrom(c)
	if s == nil {
		return nil
	}
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil
	}
	return s.Consume(token)
}
