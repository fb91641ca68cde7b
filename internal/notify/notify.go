package notify

import (
	"bulwark/internal/notify/models"
	"bulwark/internal/notify/service"
)

type (
	Message    = models.Message
	Kind       = models.Kind
	Dispatcher = service.Dispatcher
	Relay      = service.Relay
)
