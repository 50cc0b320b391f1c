package db

import (
	"context"
	"strings"
	"time"

	"lostfound/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateItem inserts a new item record. The server owns creation state:
// CreatedAt is forced to now, IsVerified to false, and the found date is
// normalized (unparseable input becomes "" on this path). Returns the new id.
func (r *Repo) CreateItem(ctx context.Context, it *models.Item) (string, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	it.FoundDate, _ = models.NormalizeFoundDate(it.FoundDate)
	it.CreatedAt = time.Now().UTC()
	it.IsVerified = false
	it.ClaimedBy = models.DedupeClaimants(it.ClaimedBy)

	if err := r.DB.WithContext(ctx).Create(it).Error; err != nil {
		return "", err
	}
	r.invalidate(ctx)
	return it.ID, nil
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// ListItems returns every item, newest first, read through the Redis cache.
// A store failure degrades to an empty set: the browse view renders "no
// items" instead of an error, and the cause goes to the log for operators.
func (r *Repo) ListItems(ctx context.Context) []models.Item {
	if r.Cache != nil {
		if items, ok := r.Cache.Get(ctx); ok {
			return items
		}
	}

	var items []models.Item
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		r.Log.Warn("item list read failed, serving empty set", zap.Error(err))
		return nil
	}
	if r.Cache != nil {
		r.Cache.Set(ctx, items)
	}
	return items
}

// itemColumns maps the mutable JSON field names onto their columns. createdAt
// is deliberately absent: the stored creation time always wins.
var itemColumns = map[string]string{
	"name":            "name",
	"description":     "description",
	"color":           "color",
	"size":            "size",
	"foundLocation":   "found_location",
	"dropOffLocation": "drop_off_location",
	"imageUrl":        "image_url",
}

// buildItemUpdates turns a merge payload into column updates. Unknown keys
// and createdAt are discarded; a foundDate that fails to parse is dropped
// from the write rather than nulled out.
func buildItemUpdates(fields map[string]any) map[string]any {
	updates := map[string]any{}
	for key, val := range fields {
		if col, ok := itemColumns[key]; ok {
			updates[col] = asString(val)
			continue
		}
		switch key {
		case "foundDate":
			if norm, ok := models.NormalizeFoundDate(asString(val)); ok {
				updates["found_date"] = norm
			}
		case "isVerified":
			if b, ok := asBool(val); ok {
				updates["is_verified"] = b
			}
		case "claimedBy":
			updates["claimed_by"] = models.DedupeClaimants(asStringSlice(val))
		}
	}
	return updates
}

// UpdateItemFields merges the whitelisted fields onto the stored record and
// returns the result.
func (r *Repo) UpdateItemFields(ctx context.Context, id string, fields map[string]any) (*models.Item, error) {
	updates := buildItemUpdates(fields)
	if len(updates) == 0 {
		return r.FindItemByID(ctx, id)
	}

	res := r.DB.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	r.invalidate(ctx)
	return r.FindItemByID(ctx, id)
}

// DeleteItem removes the item record. Image cleanup happens in the handler
// before this call and is best-effort; a missing blob never blocks deletion.
func (r *Repo) DeleteItem(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Item{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidate(ctx)
	return nil
}

type AdminItemsQuery struct {
	Q    string // substring match on name/description/color/locations
	Page int
	Size int
}

type PagedItems struct {
	Total int64         `json:"total"`
	Items []models.Item `json:"items"`
}

// ListItemsAdmin is the admin table view: every item regardless of
// verification or claim state, paged, newest first.
func (r *Repo) ListItemsAdmin(ctx context.Context, q AdminItemsQuery) (*PagedItems, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 || q.Size > 200 {
		q.Size = 20
	}

	tx := r.DB.WithContext(ctx).Model(&models.Item{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			`LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(color) LIKE ?
			 OR LOWER(found_location) LIKE ? OR LOWER(drop_off_location) LIKE ?`,
			like, like, like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Item
	if err := tx.
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedItems{Total: total, Items: items}, nil
}

// Field coercion helpers. Merge payloads arrive either as JSON (typed) or as
// multipart form values (all strings).

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return ""
	}
}

func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "on":
			return true, true
		case "false", "0", "off", "":
			return false, true
		}
	}
	return false, false
}

func asStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, strings.TrimSpace(str))
			}
		}
		return out
	case string:
		// The admin table edits the claimant list as a comma-separated string.
		if strings.TrimSpace(s) == "" {
			return nil
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	}
	return nil
}
