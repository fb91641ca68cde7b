package domains

import (
	"context"

	assetstore "bulwark/internal/asset/store"
)

// OSDomain reads root users per server. Root users of self-operated hosts
// are accounts but not admins.
type OSDomain struct {
	base
}

func (d *OSDomain) AllUsers(ctx context.Context) ([]string, error) {
	servers, err := d.assetNames(ctx)
	if err != nil {
		return nil, err
	}
	return d.rootUsers(ctx, servers)
}

func (d *OSDomain) AdminUsers(ctx context.Context) ([]string, error) {
	servers, err := d.assetNames(ctx)
	if err != nil {
		return nil, err
	}
	return d.rootUsers(ctx, d.adminServers(servers))
}

func (d *OSDomain) adminServers(servers []string) []string {
	if d.set.selfOperated == nil {
		return servers
	}
	out := make([]string, 0, len(servers))
	for _, s := range servers {
		if !d.set.selfOperated.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

func (d *OSDomain) rootUsers(ctx context.Context, servers []string) ([]string, error) {
	if len(servers) == 0 {
		return nil, nil
	}
	rows, err := d.set.assets.OSAccounts(ctx, assetstore.SnapshotQuery{Day: d.day, Servers: servers})
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(rows))
	for _, r := range rows {
		tags = append(tags, r.User)
	}
	return d.accountIDs(ctx, tags)
}

func (d *OSDomain) UpdateRiskTag(ctx context.Context, accountIDs []string, validated bool) error {
	users, err := d.storedTags(ctx, accountIDs)
	if err != nil || len(users) == 0 {
		return err
	}
	servers, err := d.assetNames(ctx)
	if err != nil {
		return err
	}
	_, err = d.set.assets.MarkOSRisk(ctx, assetstore.SnapshotQuery{Day: d.day, Servers: servers, Users: users}, d.systemID, !validated)
	return err
}
