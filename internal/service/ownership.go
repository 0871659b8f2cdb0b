package service

import "github.com/securevault/go-secure-vault/internal/logger"

// OwnershipGuard is the single authorization choke point for record access.
// Every service that hands a stored record back to a requester must pass it
// through [OwnershipGuard.Authorize] first; no other code path compares
// requester and owner identities.
type OwnershipGuard struct {
	logger *logger.Logger
}

func NewOwnershipGuard(logger *logger.Logger) *OwnershipGuard {
	return &OwnershipGuard{logger: logger}
}

// Authorize checks that requesterID owns the record held by ownerID.
// An empty requesterID never matches: unauthenticated callers are rejected
// even if a record somehow carries an empty owner.
//
// Returns [ErrNotOwner] on mismatch. Callers translate it into the matching
// not-found sentinel before it reaches any transport boundary.
func (g *OwnershipGuard) Authorize(requesterID, ownerID string) error {
	if requesterID == "" || requesterID != ownerID {
		g.logger.Warn().
			Str("func", "*OwnershipGuard.Authorize").
			Str("requester_id", requesterID).
			Str("owner_id", ownerID).
			Msg("ownership check failed")
		return ErrNotOwner
	}

	return nil
}
