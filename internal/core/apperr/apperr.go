// Package apperr holds the error taxonomy shared by the services. Every
// error is a semantic rejection the caller can act on; nothing here is
// retried internally.
package apperr

import "fmt"

// NotFound means the referenced entity is absent or soft-deleted.
type NotFound struct {
	Entity string
	ID     string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// PermissionDenied means the requester is not allowed to mutate the resource.
type PermissionDenied struct {
	UserID   string
	Resource string
}

func (e *PermissionDenied) Error() string {
	return fmt.Sprintf("user %s has no permission on %s", e.UserID, e.Resource)
}

// Conflict means the write collides with existing state, e.g. a duplicate like.
type Conflict struct {
	Reason string
}

func (e *Conflict) Error() string { return e.Reason }

// Unresolvable means an authenticated principal could not be mapped to a live
// user record. Authentication already vouched for the caller, so this is an
// internal inconsistency rather than a client mistake.
type Unresolvable struct {
	UserID string
}

func (e *Unresolvable) Error() string {
	return fmt.Sprintf("could not resolve user %s", e.UserID)
}
