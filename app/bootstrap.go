package app

import (
	"context"

	"lostfound/db"

	"go.uber.org/zap"
)

// EnsureAdminRoles promotes already-registered users whose email appears in
// ADMIN_EMAILS. New registrations with those emails get the role directly;
// this covers accounts that existed before the address was configured.
func EnsureAdminRoles(ctx context.Context, a *App, repo *db.Repo) {
	if len(a.Config.AdminEmails) == 0 {
		return
	}
	n, err := repo.PromoteAdmins(ctx, a.Config.AdminEmails)
	if err != nil {
		a.Log.Warn("admin role bootstrap failed", zap.Error(err))
		return
	}
	if n > 0 {
		a.Log.Info("promoted configured admins", zap.Int64("count", n))
	}
}
