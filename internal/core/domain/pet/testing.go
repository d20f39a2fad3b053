package pet

import (
	"context"
	"sync"

	c "petminder/internal/core/domain/common"
)

type FakeRepository struct {
	Pets        []Pet
	ReadWith    []ReadOptions
	Locked      []ID
	ReturnError error
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Pets: make([]Pet, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (p Pet, err error) {
	if r.ReturnError != nil {
		return p, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Pets {
		if existing.ID == input.ID {
			return p, ErrPetAlreadyExists
		}
	}
	p = Pet{
		ID:          input.ID,
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Gender:      input.Gender,
		Type:        input.Type,
		DateOfBirth: input.DateOfBirth,
		Breed:       input.Breed,
		Weight:      input.Weight,
		HealthData:  input.HealthData,
		CreatedAt:   input.CreatedAt,
	}
	r.Pets = append(r.Pets, p)
	return p, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Pet, err error) {
	if r.ReturnError != nil {
		return p, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Pets {
		if p.ID == id {
			return p, nil
		}
	}
	return p, ErrPetDoesNotExist
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

func (r *FakeRepository) filter(options ReadOptions) []Pet {
	pets := make([]Pet, 0, len(r.Pets))
	for _, p := range r.Pets {
		if options.OwnerIDEquals.IsPresent && p.OwnerID != options.OwnerIDEquals.Value {
			continue
		}
		pets = append(pets, p)
	}
	return pets
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Pet, error) {
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

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (p Pet, err error) {
	if r.ReturnError != nil {
		return p, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Pets {
		if r.Pets[ix].ID != input.ID {
			continue
		}
		if input.DoNameUpdate {
			r.Pets[ix].Name = input.Name
		}
		if input.DoGenderUpdate {
			r.Pets[ix].Gender = input.Gender
		}
		if input.DoTypeUpdate {
			r.Pets[ix].Type = input.Type
		}
		if input.DoDateOfBirthUpdate {
			r.Pets[ix].DateOfBirth = input.DateOfBirth
		}
		if input.DoBreedUpdate {
			r.Pets[ix].Breed = input.Breed
		}
		if input.DoWeightUpdate {
			r.Pets[ix].Weight = input.Weight
		}
		if input.DoHealthDataUpdate {
			r.Pets[ix].HealthData = input.HealthData
		}
		return r.Pets[ix], nil
	}
	return p, ErrPetDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError != nil {
		return r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Pets {
		if p.ID == id {
			r.Pets = append(r.Pets[:ix], r.Pets[ix+1:]...)
			return nil
		}
	}
	return ErrPetDoesNotExist
}
