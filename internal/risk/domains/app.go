package domains

import (
	"context"

	assetstore "bulwark/internal/asset/store"
)

// AppDomain reads business-group role snapshots. Admins hold the admin
// role configured for their business group.
type AppDomain struct {
	base
}

func (d *AppDomain) AllUsers(ctx context.Context) ([]string, error) {
	bgs, err := d.assetNames(ctx)
	if err != nil || len(bgs) == 0 {
		return nil, err
	}
	rows, err := d.set.assets.AppRoles(ctx, assetstore.SnapshotQuery{Day: d.day, BGNames: bgs})
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(rows))
	for _, r := range rows {
		tags = append(tags, r.User)
	}
	return d.accountIDs(ctx, tags)
}

func (d *AppDomain) AdminUsers(ctx context.Context) ([]string, error) {
	bgs, err := d.assetNames(ctx)
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, bg := range bgs {
		role := d.set.policy.BGAdminRoles[bg]
		if role == "" {
			continue
		}
		rows, err := d.set.assets.AppRoles(ctx, assetstore.SnapshotQuery{
			Day:     d.day,
			BGNames: []string{bg},
			Roles:   []string{role},
		})
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			tags = append(tags, r.User)
		}
	}
	return d.accountIDs(ctx, tags)
}

func (d *AppDomain) UpdateRiskTag(ctx context.Context, accountIDs []string, validated bool) error {
	users, err := d.storedTags(ctx, accountIDs)
	if err != nil || len(users) == 0 {
		return err
	}
	bgs, err := d.assetNames(ctx)
	if err != nil {
		return err
	}
	_, err = d.set.assets.MarkAppRisk(ctx, assetstore.SnapshotQuery{Day: d.day, BGNames: bgs, Users: users}, d.systemID, !validated)
	return err
}
