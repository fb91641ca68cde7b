// Package review builds the account, log and ticket pages auditors work
// through, and records their comments.
package review

import (
	"bulwark/internal/review/handler"
	"bulwark/internal/review/models"
	"bulwark/internal/review/service"
)

type (
	Comment        = models.Comment
	Feed           = models.Feed
	FeedService    = service.FeedService
	CommentService = service.CommentService
	Preheater      = service.Preheater
	Handler        = handler.Handler
)
