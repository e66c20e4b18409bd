package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/office-supply-webshop/state"
)

const (
	SessionHeader = "X-Session-ID"
	SessionIDKey  = "session_id"
	sessionKey    = "session_state"
)

// Session attaches the caller's state, creating a session when the header is
// missing or unknown. The effective ID is always echoed back.
func Session(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, _ := store.Get(c.GetHeader(SessionHeader))
		c.Set(sessionKey, st)
		c.Set(SessionIDKey, st.ID)
		c.Header(SessionHeader, st.ID)
		c.Next()
	}
}

// State returns the session state attached by Session.
func State(c *gin.Context) *state.State {
	return c.MustGet(sessionKey).(*state.State)
}
