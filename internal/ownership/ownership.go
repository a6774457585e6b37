// Package ownership holds the single authorization rule every mutation route
// shares: the authenticated identity recorded on a resource at creation is
// the only identity allowed to update or delete it later.
package ownership

import "errors"

// ErrNotOwner is returned when the caller is authenticated but is not the
// resource's recorded owner. Routes map it to 403.
var ErrNotOwner = errors.New("not the resource owner")

// Resource is any persisted entity that records its creator. Which field
// backs OwnerID (posted_by, agent_id) is up to the model.
type Resource interface {
	OwnerID() string
}

// Authorize compares the resource's recorded owner with the authenticated
// identity's id. Both sides are plain id strings; equality is exact.
func Authorize(res Resource, identityID string) error {
	if identityID == "" || res.OwnerID() != identityID {
		return ErrNotOwner
	}
	return nil
}
