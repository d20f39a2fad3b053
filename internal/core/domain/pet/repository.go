package pet

import (
	"context"
	"errors"
	"time"

	c "petminder/internal/core/domain/common"
	"petminder/internal/core/domain/user"
)

type CreateInput struct {
	ID          ID
	OwnerID     user.ID
	Name        string
	Gender      string
	Type        string
	DateOfBirth time.Time
	Breed       string
	Weight      float64
	HealthData  c.Optional[HealthData]
	CreatedAt   time.Time
}

type ReadOptions struct {
	OwnerIDEquals c.Optional[user.ID]
	Limit         c.Optional[uint]
	Offset        uint
}

type UpdateInput struct {
	ID                  ID
	DoNameUpdate        bool
	Name                string
	DoGenderUpdate      bool
	Gender              string
	DoTypeUpdate        bool
	Type                string
	DoDateOfBirthUpdate bool
	DateOfBirth         time.Time
	DoBreedUpdate       bool
	Breed               string
	DoWeightUpdate      bool
	Weight              float64
	DoHealthDataUpdate  bool
	HealthData          c.Optional[HealthData]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Pet, error)
	GetByID(ctx context.Context, id ID) (Pet, error)
	Lock(ctx context.Context, id ID) error
	Read(ctx context.Context, options ReadOptions) ([]Pet, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Pet, error)
	Delete(ctx context.Context, id ID) error
}

// CheckReference verifies that an optional pet reference points to a pet of
// ownerID. A missing or foreign pet is reported as ErrInvalidReference.
func CheckReference(ctx context.Context, pets Repository, petID c.Optional[ID], ownerID user.ID) error {
	if !petID.IsPresent {
		return nil
	}
	p, err := pets.GetByID(ctx, petID.Value)
	if errors.Is(err, ErrPetDoesNotExist) {
		return ErrInvalidReference
	}
	if err != nil {
		return err
	}
	if p.OwnerID != ownerID {
		return ErrInvalidReference
	}
	return nil
}
