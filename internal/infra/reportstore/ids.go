package reportstore

import (
	"github.com/google/uuid"
	"github.com/runoshun/leadtime/internal/domain"
)

// Ensure UUIDGenerator implements domain.IDGenerator interface.
var _ domain.IDGenerator = UUIDGenerator{}

// UUIDGenerator creates random run ids.
type UUIDGenerator struct{}

// NewID returns a new UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
