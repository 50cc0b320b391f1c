package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"lostfound/app"
	"lostfound/db"
	"lostfound/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminItemController struct{ *Srv }

func NewAdminItemController(s *Srv) *AdminItemController { return &AdminItemController{Srv: s} }

// GET /api/admin/items?q=&page=&size=
// The editable table: every item, no verification filter. A failed read
// degrades to an empty page like the user view; the cause goes to the log.
func (ac *AdminItemController) ListItems(c *gin.Context) {
	q := db.AdminItemsQuery{Q: c.Query("q")}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))

	res, err := ac.Repo.ListItemsAdmin(c.Request.Context(), q)
	if err != nil {
		ac.Log.Warn("admin item list read failed, serving empty page", zap.Error(err))
		res = &db.PagedItems{Items: []models.Item{}}
	}
	c.JSON(http.StatusOK, app.H{"ok": true, "total": res.Total, "items": res.Items})
}

// POST /api/admin/items
// Table row add. The claimant list may be pre-filled; creation state
// (createdAt, isVerified=false) is still forced server-side.
func (ac *AdminItemController) CreateItem(c *gin.Context) {
	var in struct {
		Name            string   `json:"name" binding:"required"`
		Description     string   `json:"description"`
		Color           string   `json:"color"`
		Size            string   `json:"size"`
		FoundLocation   string   `json:"foundLocation"`
		DropOffLocation string   `json:"dropOffLocation"`
		FoundDate       string   `json:"foundDate"`
		ClaimedBy       []string `json:"claimedBy"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	it := &models.Item{
		Name:            in.Name,
		Description:     in.Description,
		Color:           in.Color,
		Size:            in.Size,
		FoundLocation:   in.FoundLocation,
		DropOffLocation: in.DropOffLocation,
		FoundDate:       in.FoundDate,
		ClaimedBy:       pq.StringArray(in.ClaimedBy),
	}
	id, err := ac.Repo.CreateItem(c.Request.Context(), it)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	ac.audit(c, models.ActionItemCreate, &id, it.Name)
	c.JSON(http.StatusCreated, app.H{"id": id, "item": it})
}

// PUT /api/admin/items/:id
// Merge-update. JSON bodies carry field edits from the table; multipart
// bodies additionally carry an image replacement ("image" file) or an
// explicit clear ("removeImage=true"). An omitted image leaves the stored
// reference untouched.
func (ac *AdminItemController) UpdateItem(c *gin.Context) {
	id := c.Param("id")

	existing, err := ac.Repo.FindItemByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	fields := map[string]any{}
	removeImage := false
	newImageURL := ""

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
			return
		}
		for k, vs := range form.Value {
			if len(vs) == 0 {
				continue
			}
			if k == "removeImage" {
				removeImage = vs[0] == "true"
				continue
			}
			fields[k] = vs[0]
		}
		if fhs := form.File["image"]; len(fhs) > 0 {
			url, err := ac.storeImage(c.Request.Context(), fhs[0])
			if err != nil {
				c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
				return
			}
			newImageURL = url
		}
	} else {
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
			return
		}
		// JSON can only clear the image, not upload one.
		if v, ok := fields["imageUrl"]; ok {
			if v == nil || v == "" {
				removeImage = true
			}
			delete(fields, "imageUrl")
		}
	}

	switch {
	case newImageURL != "":
		// New image first, then best-effort removal of the old one.
		ac.deleteImage(c.Request.Context(), existing.ImageURL)
		fields["imageUrl"] = newImageURL
	case removeImage:
		ac.deleteImage(c.Request.Context(), existing.ImageURL)
		fields["imageUrl"] = ""
	}

	it, err := ac.Repo.UpdateItemFields(c.Request.Context(), id, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	ac.audit(c, models.ActionItemUpdate, &id, it.Name)
	c.JSON(http.StatusOK, it)
}

// DELETE /api/admin/items/:id
// Attached image removal is best-effort: a missing blob never blocks the
// record deletion.
func (ac *AdminItemController) DeleteItem(c *gin.Context) {
	id := c.Param("id")

	existing, err := ac.Repo.FindItemByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	ac.deleteImage(c.Request.Context(), existing.ImageURL)

	if err := ac.Repo.DeleteItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	ac.audit(c, models.ActionItemDelete, &id, existing.Name)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// POST /api/admin/items/:id/verify
// Marks the item confirmed-returned. This is the only dedicated path that
// sets isVerified; there is no reverse action (the table's field edit remains
// the escape hatch).
func (ac *AdminItemController) VerifyItem(c *gin.Context) {
	id := c.Param("id")

	it, err := ac.Repo.UpdateItemFields(c.Request.Context(), id, map[string]any{"isVerified": true})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	ac.audit(c, models.ActionItemVerify, &id, it.Name)
	c.JSON(http.StatusOK, it)
}

// audit records the admin mutation; failures are logged, not surfaced.
func (ac *AdminItemController) audit(c *gin.Context, action string, itemID *string, detail string) {
	_, err := ac.Repo.LogAction(
		c.Request.Context(),
		c.GetString(app.CtxUserID),
		c.GetString(app.CtxEmail),
		action, itemID, detail,
	)
	if err != nil {
		ac.Log.Warn("audit write failed", zap.String("action", action), zap.Error(err))
	}
}
