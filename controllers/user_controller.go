package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"lostfound/app"
	"lostfound/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// GET /api/admin/users?q=&page=&size=
func (uc *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	res, err := uc.Repo.ListUsers(c.Request.Context(), c.Query("q"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	u, err := uc.Repo.FindUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/admin/users/:id
// Also revokes every live session of the deleted account.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == c.GetString(app.CtxUserID) {
		c.JSON(http.StatusBadRequest, app.H{"error": "cannot delete own account"})
		return
	}

	if err := uc.Repo.DeleteUserByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	_ = uc.AppSess.RevokeAllForUser(c.Request.Context(), id)

	if _, err := uc.Repo.LogAction(
		c.Request.Context(),
		c.GetString(app.CtxUserID),
		c.GetString(app.CtxEmail),
		models.ActionUserDelete, nil, "deleted user "+id,
	); err != nil {
		uc.Log.Warn("audit write failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
