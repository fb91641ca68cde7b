// Package ticket verifies deployments against approved online change
// tickets.
package ticket

import (
	"bulwark/internal/ticket/models"
	"bulwark/internal/ticket/service"
)

type (
	DeployRecord = models.DeployRecord
	OnlineTicket = models.OnlineTicket
	Verdict      = models.Verdict
	Verifier     = service.Verifier
)
