package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash kinds used across the site.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// FlashMessage is a one-shot notification rendered on the page that follows
// a redirect.
type FlashMessage struct {
	Kind    string
	Message string
}

// Flash queues a message in the session. It is consumed by the next call to
// TakeFlashes.
func Flash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	_ = session.Save()
}

// TakeFlashes drains every queued flash message. Reading clears them, so a
// refresh of the rendered page shows nothing.
func TakeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	var out []FlashMessage
	for _, kind := range []string{FlashSuccess, FlashError, FlashInfo} {
		for _, v := range session.Flashes(kind) {
			if msg, ok := v.(string); ok {
				out = append(out, FlashMessage{Kind: kind, Message: msg})
			}
		}
	}
	_ = session.Save()
	return out
}
