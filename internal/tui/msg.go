package tui

import "github.com/runoshun/leadtime/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgReportsLoaded is sent when the item reports have been computed or read back.
type MsgReportsLoaded struct {
	Reports []domain.ItemReport
}

func (MsgReportsLoaded) sealed() {}

// MsgError is sent when loading fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
