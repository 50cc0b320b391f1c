package controllers

import (
	"errors"
	"net/http"

	"lostfound/app"
	"lostfound/db"
	"lostfound/filters"
	"lostfound/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

// GET /api/items?q=
// The browse view: unverified items matching the search term, newest first.
// Store read failures degrade to an empty list (already logged by the repo).
func (ic *ItemController) ListItems(c *gin.Context) {
	role := c.GetString(app.CtxRole)
	term := c.Query("q")

	items := ic.Repo.ListItems(c.Request.Context())
	visible := filters.SortByRecency(filters.VisibleTo(role, term, items))
	if visible == nil {
		visible = []models.Item{}
	}
	c.JSON(http.StatusOK, app.H{"items": visible})
}

// GET /api/items/mine
// Items the caller has claimed, including verified (delivered) ones.
func (ic *ItemController) ListMine(c *gin.Context) {
	identity := c.GetString(app.CtxIdentity)

	items := ic.Repo.ListItems(c.Request.Context())
	mine := filters.SortByRecency(filters.ClaimedByUser(identity, items))
	if mine == nil {
		mine = []models.Item{}
	}
	c.JSON(http.StatusOK, app.H{"items": mine})
}

// POST /api/items (multipart)
// A user reports a found item, optionally with a photo. The photo is uploaded
// first; only its URL is stored on the record.
func (ic *ItemController) ReportItem(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "name is required"})
		return
	}

	it := &models.Item{
		Name:            name,
		Description:     c.PostForm("description"),
		Color:           c.PostForm("color"),
		Size:            c.PostForm("size"),
		FoundLocation:   c.PostForm("foundLocation"),
		DropOffLocation: c.PostForm("dropOffLocation"),
		FoundDate:       c.PostForm("foundDate"),
	}

	if fh, err := c.FormFile("image"); err == nil {
		url, err := ic.storeImage(c.Request.Context(), fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
			return
		}
		it.ImageURL = url
	}

	id, err := ic.Repo.CreateItem(c.Request.Context(), it)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{"id": id, "item": it})
}

// POST /api/items/:id/claim
func (ic *ItemController) Claim(c *gin.Context) {
	itemID := c.Param("id")
	identity := c.GetString(app.CtxIdentity)
	if identity == "" {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	it, err := ic.Repo.ClaimItem(c.Request.Context(), itemID, identity)
	switch {
	case errors.Is(err, db.ErrAlreadyClaimed):
		// No-op, not an error: the user had already claimed it.
		c.JSON(http.StatusOK, app.H{"ok": true, "alreadyClaimed": true})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, app.H{"ok": true, "item": it})
	}
}

// POST /api/items/:id/unclaim
func (ic *ItemController) Unclaim(c *gin.Context) {
	itemID := c.Param("id")
	identity := c.GetString(app.CtxIdentity)
	if identity == "" {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	it, err := ic.Repo.UnclaimItem(c.Request.Context(), itemID, identity)
	switch {
	case errors.Is(err, db.ErrNotClaimed):
		c.JSON(http.StatusOK, app.H{"ok": true, "notClaimed": true})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, app.H{"ok": true, "item": it})
	}
}
