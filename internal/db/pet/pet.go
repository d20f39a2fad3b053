package pet

import (
	"context"
	"errors"
	c "petminder/internal/core/domain/common"
	e "petminder/internal/core/domain/errors"
	"petminder/internal/core/domain/pet"
	"petminder/internal/core/domain/user"
	"petminder/internal/db"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	ID_CONSTRAINT_NAME    = "pet_pkey"
	OWNER_CONSTRAINT_NAME = "pet_owner_id_fkey"
)

const petColumns = `id, owner_id, name, gender, type, date_of_birth, breed, weight, health_data, created_at`

const createPet = `
INSERT INTO pet (id, owner_id, name, gender, type, date_of_birth, breed, weight, health_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + petColumns

const getPetByID = `SELECT ` + petColumns + ` FROM pet WHERE id = $1`

const lockPet = `SELECT id FROM pet WHERE id = $1 FOR UPDATE`

const readPets = `
SELECT ` + petColumns + ` FROM pet
WHERE ($1::bool OR owner_id = $2)
ORDER BY created_at, id
LIMIT $3 OFFSET $4`

const countPets = `SELECT count(*) FROM pet WHERE ($1::bool OR owner_id = $2)`

const updatePet = `
UPDATE pet SET
    name = CASE WHEN $2::bool THEN $3 ELSE name END,
    gender = CASE WHEN $4::bool THEN $5 ELSE gender END,
    type = CASE WHEN $6::bool THEN $7 ELSE type END,
    date_of_birth = CASE WHEN $8::bool THEN $9 ELSE date_of_birth END,
    breed = CASE WHEN $10::bool THEN $11 ELSE breed END,
    weight = CASE WHEN $12::bool THEN $13 ELSE weight END,
    health_data = CASE WHEN $14::bool THEN $15 ELSE health_data END
WHERE id = $1
RETURNING ` + petColumns

const deletePet = `DELETE FROM pet WHERE id = $1`

// healthData is the JSONB document stored in pet.health_data.
type healthData struct {
	WeightHistory      []float64  `json:"weight_history"`
	LastVetVisit       *time.Time `json:"last_vet_visit,omitempty"`
	Vaccinations       []string   `json:"vaccinations"`
	Allergies          []string   `json:"allergies"`
	MedicalNotes       *string    `json:"medical_notes,omitempty"`
	CurrentMedications []string   `json:"current_medications"`
}

type PgxPetRepository struct {
	db db.DBTX
}

func NewPgxPetRepository(dbtx db.DBTX) *PgxPetRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPetRepository{db: dbtx}
}

func (r *PgxPetRepository) Create(ctx context.Context, input pet.CreateInput) (p pet.Pet, err error) {
	data, err := encodeHealthData(input.HealthData)
	if err != nil {
		return p, err
	}
	row := r.db.QueryRow(
		ctx,
		createPet,
		string(input.ID),
		string(input.OwnerID),
		input.Name,
		input.Gender,
		input.Type,
		input.DateOfBirth,
		input.Breed,
		input.Weight,
		data,
		input.CreatedAt,
	)
	p, err = scanPet(row)
	switch {
	case db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, ID_CONSTRAINT_NAME):
		return p, pet.ErrPetAlreadyExists
	case db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, OWNER_CONSTRAINT_NAME):
		return p, user.ErrOwnerDoesNotExist
	}
	return p, err
}

func (r *PgxPetRepository) GetByID(ctx context.Context, id pet.ID) (p pet.Pet, err error) {
	p, err = scanPet(r.db.QueryRow(ctx, getPetByID, string(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, pet.ErrPetDoesNotExist
	}
	return p, err
}

func (r *PgxPetRepository) Lock(ctx context.Context, id pet.ID) error {
	// The method works only within a DB transaction
	_, err := r.db.Exec(ctx, lockPet, string(id))
	return err
}

func (r *PgxPetRepository) Read(ctx context.Context, options pet.ReadOptions) ([]pet.Pet, error) {
	rows, err := r.db.Query(
		ctx,
		readPets,
		!options.OwnerIDEquals.IsPresent,
		string(options.OwnerIDEquals.Value),
		db.Limit(options.Limit),
		int64(options.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := make([]pet.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

func (r *PgxPetRepository) Count(ctx context.Context, options pet.ReadOptions) (uint, error) {
	var count int64
	err := r.db.QueryRow(
		ctx,
		countPets,
		!options.OwnerIDEquals.IsPresent,
		string(options.OwnerIDEquals.Value),
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxPetRepository) Update(ctx context.Context, input pet.UpdateInput) (p pet.Pet, err error) {
	data, err := encodeHealthData(input.HealthData)
	if err != nil {
		return p, err
	}
	row := r.db.QueryRow(
		ctx,
		updatePet,
		string(input.ID),
		input.DoNameUpdate,
		input.Name,
		input.DoGenderUpdate,
		input.Gender,
		input.DoTypeUpdate,
		input.Type,
		input.DoDateOfBirthUpdate,
		input.DateOfBirth,
		input.DoBreedUpdate,
		input.Breed,
		input.DoWeightUpdate,
		input.Weight,
		input.DoHealthDataUpdate,
		data,
	)
	p, err = scanPet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, pet.ErrPetDoesNotExist
	}
	return p, err
}

func (r *PgxPetRepository) Delete(ctx context.Context, id pet.ID) error {
	tag, err := r.db.Exec(ctx, deletePet, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pet.ErrPetDoesNotExist
	}
	return nil
}

func scanPet(row pgx.Row) (p pet.Pet, err error) {
	var (
		id          string
		ownerID     string
		dateOfBirth time.Time
		createdAt   time.Time
		data        pgtype.JSONB
	)
	err = row.Scan(
		&id,
		&ownerID,
		&p.Name,
		&p.Gender,
		&p.Type,
		&dateOfBirth,
		&p.Breed,
		&p.Weight,
		&data,
		&createdAt,
	)
	if err != nil {
		return p, err
	}
	p.ID = pet.ID(id)
	p.OwnerID = user.ID(ownerID)
	p.DateOfBirth = dateOfBirth.UTC()
	p.CreatedAt = createdAt.UTC()
	p.HealthData, err = decodeHealthData(data)
	return p, err
}

func encodeHealthData(value c.Optional[pet.HealthData]) (data pgtype.JSONB, err error) {
	if !value.IsPresent {
		data.Status = pgtype.Null
		return data, nil
	}
	h := value.Value
	err = data.Set(healthData{
		WeightHistory:      h.WeightHistory,
		LastVetVisit:       h.LastVetVisit.Pointer(),
		Vaccinations:       h.Vaccinations,
		Allergies:          h.Allergies,
		MedicalNotes:       h.MedicalNotes.Pointer(),
		CurrentMedications: h.CurrentMedications,
	})
	return data, err
}

func decodeHealthData(data pgtype.JSONB) (value c.Optional[pet.HealthData], err error) {
	if data.Status != pgtype.Present {
		return value, nil
	}
	var h healthData
	if err := data.AssignTo(&h); err != nil {
		return value, err
	}
	lastVetVisit := c.OptionalFromPointer(h.LastVetVisit)
	if lastVetVisit.IsPresent {
		lastVetVisit.Value = lastVetVisit.Value.UTC()
	}
	return c.NewOptional(pet.HealthData{
		WeightHistory:      h.WeightHistory,
		LastVetVisit:       lastVetVisit,
		Vaccinations:       h.Vaccinations,
		Allergies:          h.Allergies,
		MedicalNotes:       c.OptionalFromPointer(h.MedicalNotes),
		CurrentMedications: h.CurrentMedications,
	}, true), nil
}
