package order

import (
	"time"

	"zoo-procure-hub/internal/domain/user"
)

// Actor is the authenticated user driving a change.
type Actor struct {
	UserID string
	Role   user.Role
}

// SupplierScope is the supplier id a read must be narrowed to, or "" when
// the actor sees every supplier's records.
func (a Actor) SupplierScope() string {
	if a.Role == user.RoleSupplier {
		return a.UserID
	}
	return ""
}

type edge struct{ from, to Status }

// transitions lists every allowed move and the roles that may drive it.
var transitions = map[edge][]user.Role{
	{StatusPending, StatusApproved}:   {user.RoleAdmin},
	{StatusPending, StatusRejected}:   {user.RoleAdmin},
	{StatusApproved, StatusAccepted}:  {user.RoleSupplier},
	{StatusApproved, StatusRejected}:  {user.RoleAdmin},
	{StatusAccepted, StatusDelivered}: {user.RoleSupplier},
	{StatusAccepted, StatusRejected}:  {user.RoleAdmin},
	{StatusDelivered, StatusReceived}: {user.RoleStaff, user.RoleAdmin},
}

// Transition validates and applies a status change to o in memory.
// It does not persist anything.
func (o *Order) Transition(to Status, actor Actor, now time.Time) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	roles, ok := transitions[edge{o.Status, to}]
	if !ok {
		return ErrInvalidTransition
	}
	if !hasRole(roles, actor.Role) {
		return ErrNotAllowed
	}
	// suppliers only drive their own orders
	if actor.Role == user.RoleSupplier && o.SupplierID != actor.UserID {
		return ErrNotAllowed
	}
	// staff only confirm receipt of what they requested
	if actor.Role == user.RoleStaff && o.RequesterID != actor.UserID {
		return ErrNotAllowed
	}

	o.Status = to
	if to == StatusApproved || to == StatusRejected {
		by := actor.UserID
		at := now.UTC()
		o.ApprovedByID = &by
		o.ApprovedDate = &at
		o.ApprovedBy = nil
	}
	return nil
}

// CanRetryDelivery reports whether actor may re-send Delivered on an
// already delivered order to re-run invoice generation.
func (o *Order) CanRetryDelivery(actor Actor) bool {
	if o.Status != StatusDelivered {
		return false
	}
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleSupplier:
		return o.SupplierID == actor.UserID
	}
	return false
}

func hasRole(roles []user.Role, r user.Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}
