package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/pr-poehali-dev/office-supply-webshop/errors"
	"github.com/pr-poehali-dev/office-supply-webshop/middleware"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
)

type SessionController struct{}

func NewSessionController() *SessionController {
	return &SessionController{}
}

type languageRequest struct {
	Language string `json:"language" binding:"required"`
}

// GET /texts
func (sc *SessionController) Texts(c *gin.Context) {
	st := middleware.State(c)
	st.Lock()
	lang := st.Language
	st.Unlock()

	texts, err := services.Texts(lang)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "texts": texts})
}

// PUT /session/language
func (sc *SessionController) SetLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("invalid payload", err))
		return
	}
	texts, err := services.Texts(req.Language)
	if err != nil {
		fail(c, err)
		return
	}

	st := middleware.State(c)
	st.Lock()
	st.Language = req.Language
	st.Unlock()
	c.JSON(http.StatusOK, gin.H{"language": req.Language, "texts": texts})
}
