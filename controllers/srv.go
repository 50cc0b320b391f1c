package controllers

import (
	"bytes"
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"lostfound/app"
	"lostfound/db"
	"lostfound/imaging"
	"lostfound/session"
	"lostfound/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Srv bundles the dependencies the handlers share.
type Srv struct {
	Repo    *db.Repo
	Blob    storage.BlobStore
	AppSess *session.AppSessionStore
	Cfg     app.Config
	Log     *zap.Logger
}

func GetSrv(a *app.App) *Srv {
	blob, err := storage.NewLocalStore(a.Config.UploadDir, a.Config.PublicBaseURL)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}
	cache := db.NewItemCache(a.RDB, a.Config.ItemCacheTTL, a.Log)
	return &Srv{
		Repo:    db.NewRepo(a.DB, cache, a.Log),
		Blob:    blob,
		AppSess: a.AppSessions(),
		Cfg:     a.Config,
		Log:     a.Log,
	}
}

// --- helpers ---

func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.Cfg.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

func (s *Srv) clearAppCookie(w http.ResponseWriter) {
	secure := strings.HasPrefix(s.Cfg.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// issueSession creates a session, sets the cookie and records the login.
func (s *Srv) issueSession(ctx context.Context, w http.ResponseWriter, userID, ip, ua string) error {
	if err := s.Repo.TouchUserLogin(ctx, userID, ip, ua); err != nil {
		s.Log.Warn("login bookkeeping failed", zap.Error(err))
	}
	id := uuid.NewString()
	if err := s.AppSess.Create(ctx, id, userID); err != nil {
		return err
	}
	s.setAppCookie(w, id, s.Cfg.SessionTTL)
	return nil
}

// storeImage processes an uploaded photo and writes it to the blob store,
// returning the durable URL. Upload happens before any item write so a
// failed upload never leaves an item pointing at nothing.
func (s *Srv) storeImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	processed, err := imaging.Process(f)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename)) + ".jpg"
	return s.Blob.Put(ctx, name, bytes.NewReader(processed.Data))
}

// deleteImage is the best-effort half of every image replacement and item
// deletion: failures are logged, never surfaced, and never block the caller.
func (s *Srv) deleteImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.Blob.Delete(ctx, url); err != nil {
		s.Log.Warn("image cleanup failed", zap.String("url", url), zap.Error(err))
	}
}
