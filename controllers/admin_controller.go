package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/pr-poehali-dev/office-supply-webshop/errors"
	"github.com/pr-poehali-dev/office-supply-webshop/middleware"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
)

// AdminController serves the price list upload and the column mapping dialog.
type AdminController struct {
	uploads       *services.UploadService
	maxUploadSize int64
}

func NewAdminController(uploads *services.UploadService, maxUploadSize int64) *AdminController {
	return &AdminController{uploads: uploads, maxUploadSize: maxUploadSize}
}

type columnsRequest struct {
	Columns []string `json:"columns"`
}

type overrideRequest struct {
	Column string `json:"column"`
}

// POST /admin/upload (multipart "file")
// Files that are not spreadsheets are ignored with 204 and no state change.
func (ac *AdminController) SelectFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		fail(c, apperrors.BadRequest("file is required", err))
		return
	}
	if header.Size > ac.maxUploadSize {
		fail(c, apperrors.New(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file size exceeds %d MB", ac.maxUploadSize>>20), nil))
		return
	}

	f, err := header.Open()
	if err != nil {
		fail(c, apperrors.BadRequest("could not open file", err))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, ac.maxUploadSize+1))
	if err != nil {
		fail(c, apperrors.BadRequest("could not read file", err))
		return
	}

	st := middleware.State(c)
	if !ac.uploads.Select(st, header.Filename, header.Header.Get("Content-Type"), data) {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ac.uploads.Status(st))
}

// GET /admin/upload
func (ac *AdminController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, ac.uploads.Status(middleware.State(c)))
}

// POST /admin/upload/process
func (ac *AdminController) Process(c *gin.Context) {
	outcome, err := ac.uploads.Process(c.Request.Context(), middleware.State(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// POST /admin/mapping, optional body {"columns": [...]}
func (ac *AdminController) OpenMapping(c *gin.Context) {
	var req columnsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, apperrors.BadRequest("invalid payload", err))
			return
		}
	}
	view, err := ac.uploads.OpenMapping(middleware.State(c), req.Columns)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /admin/mapping
func (ac *AdminController) GetMapping(c *gin.Context) {
	view, err := ac.uploads.Mapping(middleware.State(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /admin/mapping/columns
func (ac *AdminController) SetColumns(c *gin.Context) {
	var req columnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("invalid payload", err))
		return
	}
	view, err := ac.uploads.SetMappingColumns(middleware.State(c), req.Columns)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /admin/mapping/fields/:index, body {"column": ""} unmaps the field
func (ac *AdminController) OverrideField(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		fail(c, apperrors.BadRequest("invalid field index", err))
		return
	}
	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("invalid payload", err))
		return
	}
	view, err := ac.uploads.OverrideMapping(middleware.State(c), index, req.Column)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /admin/mapping/confirm
func (ac *AdminController) ConfirmMapping(c *gin.Context) {
	result, err := ac.uploads.ConfirmMapping(c.Request.Context(), middleware.State(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
