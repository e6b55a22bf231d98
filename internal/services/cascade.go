package services

import (
	"fmt"
	"sort"

	"github.com/m0derNik/FromsApp-Backend/internal/models"

	"gorm.io/gorm"
)

// CascadeService removes an entity together with everything that
// transitively depends on it, in one transaction. The dependency
// structure is declared as a graph below; adding a new dependent entity
// type is one edge, not a new deletion routine.
type CascadeService struct {
	db *gorm.DB
}

func NewCascadeService(db *gorm.DB) *CascadeService {
	return &CascadeService{db: db}
}

type cascadeEdge struct {
	child string
	fk    string
}

// cascadeGraph maps an entity kind to the kinds that hold a foreign key
// to it. A form is reachable both through its submitter and through the
// template it was submitted against; the closure is kept as id sets so
// shared subtrees are deleted exactly once.
var cascadeGraph = map[string][]cascadeEdge{
	"users": {
		{child: "templates", fk: "user_id"},
		{child: "forms", fk: "user_id"},
		{child: "ratings", fk: "user_id"},
	},
	"templates": {
		{child: "questions", fk: "template_id"},
		{child: "forms", fk: "template_id"},
		{child: "ratings", fk: "template_id"},
	},
	"forms": {
		{child: "answers", fk: "form_id"},
	},
}

// deleteOrder is leaves first, so no row is ever deleted before its
// dependents within the transaction.
var deleteOrder = []string{"answers", "forms", "questions", "ratings", "templates", "users"}

func cascadeModel(kind string) interface{} {
	switch kind {
	case "users":
		return &models.User{}
	case "templates":
		return &models.Template{}
	case "questions":
		return &models.Question{}
	case "forms":
		return &models.Form{}
	case "answers":
		return &models.Answer{}
	case "ratings":
		return &models.Rating{}
	}
	panic("unknown cascade kind: " + kind)
}

func (s *CascadeService) DeleteUser(id uint) error {
	return s.deleteRoot("users", id)
}

func (s *CascadeService) DeleteTemplate(id uint) error {
	return s.deleteRoot("templates", id)
}

func (s *CascadeService) DeleteForm(id uint) error {
	return s.deleteRoot("forms", id)
}

func (s *CascadeService) deleteRoot(kind string, id uint) error {
	var count int64
	if err := s.db.Model(cascadeModel(kind)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		closure, err := collectClosure(tx, kind, id)
		if err != nil {
			return err
		}
		for _, k := range deleteOrder {
			ids := sortedIDs(closure[k])
			if len(ids) == 0 {
				continue
			}
			if err := tx.Where("id IN ?", ids).Delete(cascadeModel(k)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransaction, err)
	}
	return nil
}

// collectClosure walks the dependency graph breadth-first from the root
// and returns per-kind id sets. Only ids not seen before are expanded,
// so overlapping subtrees (a user's own form under that user's own
// template) are visited once.
func collectClosure(tx *gorm.DB, rootKind string, rootID uint) (map[string]map[uint]struct{}, error) {
	closure := make(map[string]map[uint]struct{})

	type frontier struct {
		kind string
		ids  []uint
	}
	queue := []frontier{{kind: rootKind, ids: []uint{rootID}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		seen := closure[cur.kind]
		if seen == nil {
			seen = make(map[uint]struct{})
			closure[cur.kind] = seen
		}
		fresh := cur.ids[:0:0]
		for _, id := range cur.ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			fresh = append(fresh, id)
		}
		if len(fresh) == 0 {
			continue
		}

		for _, edge := range cascadeGraph[cur.kind] {
			var childIDs []uint
			err := tx.Model(cascadeModel(edge.child)).
				Where(edge.fk+" IN ?", fresh).
				Pluck("id", &childIDs).Error
			if err != nil {
				return nil, err
			}
			if len(childIDs) > 0 {
				queue = append(queue, frontier{kind: edge.child, ids: childIDs})
			}
		}
	}
	return closure, nil
}

func sortedIDs(set map[uint]struct{}) []uint {
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
