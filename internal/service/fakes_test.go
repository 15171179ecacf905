package service

import (
	"context"
	"sort"

	"lifehub-be/internal/entity"
	"lifehub-be/internal/repository/contract"
	"lifehub-be/internal/repository/specification"
	"lifehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory repositories used by the service
// tests. Specifications are interpreted by type switch instead of
// being applied to a gorm query.
type fakeStore struct {
	users  map[uuid.UUID]*entity.User
	notes  map[uuid.UUID]*entity.Note
	events map[uuid.UUID]*entity.CalendarEvent
	goals  map[uuid.UUID]*entity.RoadmapGoal
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*entity.User),
		notes:  make(map[uuid.UUID]*entity.Note),
		events: make(map[uuid.UUID]*entity.CalendarEvent),
		goals:  make(map[uuid.UUID]*entity.RoadmapGoal),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

func (u *fakeUnitOfWork) CalendarEventRepository() contract.CalendarEventRepository {
	return &fakeEventRepo{store: u.store}
}

func (u *fakeUnitOfWork) RoadmapGoalRepository() contract.RoadmapGoalRepository {
	return &fakeGoalRepo{store: u.store}
}

// matches reports whether a record with the given id, owner, and email
// satisfies every filtering specification.
func matches(id, userId uuid.UUID, email string, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if userId != s.UserID {
				return false
			}
		case specification.ByEmail:
			if email != s.Email {
				return false
			}
		}
	}
	return true
}

func wantsPositionOrder(specs []specification.Specification) bool {
	for _, sp := range specs {
		if o, ok := sp.(specification.OrderBy); ok && o.Field == "position" {
			return true
		}
	}
	return false
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	c := *user
	r.store.users[user.Id] = &c
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matches(u.Id, uuid.Nil, u.Email, specs) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

type fakeNoteRepo struct {
	store *fakeStore
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	c := *note
	r.store.notes[note.Id] = &c
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	c := *note
	r.store.notes[note.Id] = &c
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	for id, n := range r.store.notes {
		if n.UserId == userId {
			delete(r.store.notes, id)
		}
	}
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if matches(n.Id, n.UserId, "", specs) {
			c := *n
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var out []*entity.Note
	for _, n := range r.store.notes {
		if matches(n.Id, n.UserId, "", specs) {
			c := *n
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	store *fakeStore
}

func (r *fakeEventRepo) Create(ctx context.Context, event *entity.CalendarEvent) error {
	c := *event
	r.store.events[event.Id] = &c
	return nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *entity.CalendarEvent) error {
	c := *event
	r.store.events[event.Id] = &c
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.events, id)
	return nil
}

func (r *fakeEventRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	for id, e := range r.store.events {
		if e.UserId == userId {
			delete(r.store.events, id)
		}
	}
	return nil
}

func (r *fakeEventRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CalendarEvent, error) {
	for _, e := range r.store.events {
		if matches(e.Id, e.UserId, "", specs) {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarEvent, error) {
	var out []*entity.CalendarEvent
	for _, e := range r.store.events {
		if matches(e.Id, e.UserId, "", specs) {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeGoalRepo struct {
	store *fakeStore
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.RoadmapGoal) error {
	c := *goal
	r.store.goals[goal.Id] = &c
	return nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *entity.RoadmapGoal) error {
	c := *goal
	r.store.goals[goal.Id] = &c
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.goals, id)
	return nil
}

func (r *fakeGoalRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	for id, g := range r.store.goals {
		if g.UserId == userId {
			delete(r.store.goals, id)
		}
	}
	return nil
}

func (r *fakeGoalRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoadmapGoal, error) {
	for _, g := range r.store.goals {
		if matches(g.Id, g.UserId, "", specs) {
			c := *g
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeGoalRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapGoal, error) {
	var out []*entity.RoadmapGoal
	for _, g := range r.store.goals {
		if matches(g.Id, g.UserId, "", specs) {
			c := *g
			out = append(out, &c)
		}
	}
	if wantsPositionOrder(specs) {
		sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	}
	return out, nil
}

func (r *fakeGoalRepo) MaxPosition(ctx context.Context, userId uuid.UUID) (int, error) {
	max := 0
	for _, g := range r.store.goals {
		if g.UserId == userId && g.Position > max {
			max = g.Position
		}
	}
	return max, nil
}
