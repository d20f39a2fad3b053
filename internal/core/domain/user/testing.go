package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"

	c "petminder/internal/core/domain/common"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

// FakeTokens issues opaque tokens and validates only the ones it issued.
type FakeTokens struct {
	TTL         time.Duration
	Issued      map[AccessToken]Claims
	ReturnError error
	count       int
	lock        sync.Mutex
}

func NewFakeTokens(ttl time.Duration) *FakeTokens {
	return &FakeTokens{TTL: ttl, Issued: make(map[AccessToken]Claims)}
}

func (t *FakeTokens) IssueToken(u User, now time.Time) (token AccessToken, claims Claims, err error) {
	if t.ReturnError != nil {
		return token, claims, t.ReturnError
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	t.count++
	claims = Claims{
		SubjectID: u.ID,
		Role:      u.Role,
		TokenID:   TokenID(fmt.Sprintf("jti-%d", t.count)),
		ExpiresAt: now.Add(t.TTL),
	}
	token = AccessToken(fmt.Sprintf("token-%d", t.count))
	t.Issued[token] = claims
	return token, claims, nil
}

func (t *FakeTokens) ValidateToken(token AccessToken, now time.Time) (claims Claims, err error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	claims, ok := t.Issued[token]
	if !ok || !now.Before(claims.ExpiresAt) {
		return Claims{}, ErrInvalidAccessToken
	}
	return claims, nil
}

type FakeTokenRevoker struct {
	Revoked     map[TokenID]time.Time
	ReturnError error
	lock        sync.Mutex
}

func NewFakeTokenRevoker() *FakeTokenRevoker {
	return &FakeTokenRevoker{Revoked: make(map[TokenID]time.Time)}
}

func (r *FakeTokenRevoker) Revoke(ctx context.Context, claims Claims, now time.Time) error {
	if r.ReturnError != nil {
		return r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Revoked[claims.TokenID] = claims.ExpiresAt
	return nil
}

func (r *FakeTokenRevoker) IsRevoked(ctx context.Context, id TokenID) (bool, error) {
	if r.ReturnError != nil {
		return false, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	_, ok := r.Revoked[id]
	return ok, nil
}

type FakeRepository struct {
	Users       []User
	ReadWith    []ReadOptions
	ReturnError error
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Users: make([]User, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (u User, err error) {
	if r.ReturnError != nil {
		return u, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
	}
	u = User{
		ID:           input.ID,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError != nil {
		return u, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError != nil {
		return u, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeRepository) Lock(ctx context.Context, id ID) error {
	return r.ReturnError
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]User, error) {
	if r.ReturnError != nil {
		return nil, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	return c.Paginate(r.Users, options.Offset, options.Limit), nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.ReturnError != nil {
		return 0, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.Users)), nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (u User, err error) {
	if r.ReturnError != nil {
		return u, r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID != input.ID {
			continue
		}
		if input.DoEmailUpdate {
			for _, other := range r.Users {
				if other.ID != input.ID && other.Email == input.Email {
					return u, ErrEmailAlreadyExists
				}
			}
			r.Users[ix].Email = input.Email
		}
		if input.DoFirstNameUpdate {
			r.Users[ix].FirstName = input.FirstName
		}
		if input.DoLastNameUpdate {
			r.Users[ix].LastName = input.LastName
		}
		if input.DoPasswordHashUpdate {
			r.Users[ix].PasswordHash = input.PasswordHash
		}
		if input.DoRoleUpdate {
			r.Users[ix].Role = input.Role
		}
		return r.Users[ix], nil
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError != nil {
		return r.ReturnError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}
