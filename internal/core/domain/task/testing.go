package task

import (
	"context"
	"sync"

	c "petminder/internal/core/domain/common"
)

type FakeRepository struct {
	Tasks       []Task
	ReadWith    []ReadOptions
	Locked      []ID
	ReturnError error
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Tasks: make([]Task, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (t Task, err error) {
	if r.ReturnError != nil {
		return t, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Tasks {
		if existing.ID == input.ID {
			return t, ErrTaskAlreadyExists
		}
	}
	t = Task{
		ID:          input.ID,
		OwnerID:     input.OwnerID,
		PetID:       input.PetID,
		Type:        input.Type,
		Title:       input.Title,
		IsCompleted: input.IsCompleted,
		DueDate:     input.DueDate,
		CreatedAt:   input.CreatedAt,
	}
	r.Tasks = append(r.Tasks, t)
	return t, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (t Task, err error) {
	if r.ReturnError != nil {
		return t, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return t, ErrTaskDoesNotExist
}

func (r *FakeRepository) Lock(ctx context.Context, id ID) error {
	if r.ReturnError != nil {
		return r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Locked = append(r.Locked, id)
	return nil
}

func (r *FakeRepository) filter(options ReadOptions) []Task {
	tasks := make([]Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		if options.OwnerIDEquals.IsPresent && t.OwnerID != options.OwnerIDEquals.Value {
			continue
		}
		if options.IsCompletedEquals.IsPresent && t.IsCompleted != options.IsCompletedEquals.Value {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Task, error) {
	if r.ReturnError != nil {
		return nil, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	return c.Paginate(r.filter(options), options.Offset, options.Limit), nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.ReturnError != nil {
		return 0, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.filter(options))), nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (t Task, err error) {
	if r.ReturnError != nil {
		return t, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Tasks {
		if r.Tasks[ix].ID != input.ID {
			continue
		}
		if input.DoPetIDUpdate {
			r.Tasks[ix].PetID = input.PetID
		}
		if input.DoTypeUpdate {
			r.Tasks[ix].Type = input.Type
		}
		if input.DoTitleUpdate {
			r.Tasks[ix].Title = input.Title
		}
		if input.DoIsCompletedUpdate {
			r.Tasks[ix].IsCompleted = input.IsCompleted
		}
		if input.DoDueDateUpdate {
			r.Tasks[ix].DueDate = input.DueDate
		}
		return r.Tasks[ix], nil
	}
	return t, ErrTaskDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError != nil {
		return r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tasks {
		if t.ID == id {
			r.Tasks = append(r.Tasks[:ix], r.Tasks[ix+1:]...)
			return nil
		}
	}
	return ErrTaskDoesNotExist
}
