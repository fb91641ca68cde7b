// Package task holds audit review tasks: their lifecycle, the derived review
// status and the periodic generator.
package task

import (
	"bulwark/internal/task/models"
	"bulwark/internal/task/service"
)

type (
	Task      = models.Task
	Status    = models.Status
	Detail    = models.Detail
	Service   = service.Service
	Generator = service.Generator
)
