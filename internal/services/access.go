package services

import "github.com/m0derNik/FromsApp-Backend/internal/models"

// Actor is the resolved identity of the caller. A nil *Actor means the
// request is anonymous.
type Actor struct {
	ID   uint
	Role string
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == models.RoleAdmin
}

type Action string

const (
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource describes the target of an action for authorization purposes.
type Resource struct {
	Kind    string
	OwnerID uint
	Public  bool
}

func TemplateResource(t *models.Template) Resource {
	return Resource{Kind: "template", OwnerID: t.UserID, Public: t.IsPublic}
}

func FormResource(f *models.Form) Resource {
	return Resource{Kind: "form", OwnerID: f.UserID}
}

// Authorize is the single access-control policy. It returns nil,
// ErrAuthRequired (no actor on a protected action) or ErrForbidden
// (actor present but fails the ownership/role rules). The two failures
// are distinct on purpose: the boundary maps them to 401 and 403.
func Authorize(actor *Actor, action Action, res Resource) error {
	// Browsing public resources needs no identity at all.
	if action == ActionList && res.Public {
		return nil
	}
	if action == ActionRead && res.Public {
		return nil
	}

	if actor == nil {
		return ErrAuthRequired
	}
	if actor.IsAdmin() {
		return nil
	}

	switch action {
	case ActionCreate, ActionList:
		// Any authenticated user may create, or list their own resources.
		return nil
	case ActionRead, ActionUpdate, ActionDelete:
		if actor.ID == res.OwnerID {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
