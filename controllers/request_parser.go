package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
)

const MaxPageNumber = 1000000

// parsePagination reads page and perPage with the listing defaults.
func parsePagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page number")
	}
	page = min(page, MaxPageNumber)

	perPage, err := strconv.Atoi(c.DefaultQuery("perPage", strconv.Itoa(services.DefaultPerPage)))
	if err != nil || perPage < 1 {
		return 0, 0, errors.New("invalid page size")
	}
	return page, min(perPage, services.MaxPerPage), nil
}

func parseInStock(c *gin.Context) (*bool, error) {
	raw := strings.TrimSpace(c.Query("in_stock"))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New("invalid boolean value for 'in_stock'")
	}
	return &v, nil
}
