package domains

import (
	"context"

	assetstore "bulwark/internal/asset/store"
)

// DBDomain reads database grants inside the system's DB scope. Admins come
// from the configured DBA allowlist.
type DBDomain struct {
	base
}

func (d *DBDomain) AllUsers(ctx context.Context) ([]string, error) {
	scope, err := d.set.catalog.DBScope(ctx, d.systemID)
	if err != nil || scope.IsEmpty() {
		return nil, err
	}
	rows, err := d.set.assets.DBRoles(ctx, assetstore.SnapshotQuery{Day: d.day, Scope: scope})
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(rows))
	for _, r := range rows {
		tags = append(tags, r.User)
	}
	return d.accountIDs(ctx, tags)
}

func (d *DBDomain) AdminUsers(ctx context.Context) ([]string, error) {
	return d.accountIDs(ctx, d.set.policy.DBAAdmins)
}

func (d *DBDomain) UpdateRiskTag(ctx context.Context, accountIDs []string, validated bool) error {
	users, err := d.storedTags(ctx, accountIDs)
	if err != nil || len(users) == 0 {
		return err
	}
	scope, err := d.set.catalog.DBScope(ctx, d.systemID)
	if err != nil {
		return err
	}
	_, err = d.set.assets.MarkDBRisk(ctx, assetstore.SnapshotQuery{Day: d.day, Scope: scope, Users: users}, d.systemID, !validated)
	return err
}
