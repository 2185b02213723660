package domain

import (
	"errors"

	"github.com/runoshun/leadtime/internal/timeline"
)

// Domain errors.
var (
	// ErrInvalidArgument is shared with the timeline package so callers can
	// test either layer's failures with a single errors.Is.
	ErrInvalidArgument  = timeline.ErrInvalidArgument
	ErrMissingReference = errors.New("missing reference")
	ErrItemNotFound     = errors.New("item not found")
	ErrRunNotFound      = errors.New("run not found")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNoHistory        = errors.New("no history available")
	ErrDuplicateItem    = errors.New("duplicate item key")
	ErrNoLogs           = errors.New("no log file")
)
