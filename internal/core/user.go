package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rodrigomedeirosbrazil/cms-api/internal/crypto"
	"github.com/rodrigomedeirosbrazil/cms-api/internal/model"
)

// Validation messages reported in the response envelope.
const (
	MsgEmailExists      = "Email already exists."
	MsgPasswordRequired = "Password must be provided."
	MsgNameRequired     = "Name must be provided."
	MsgUserNotFound     = "User not found."
)

const userColumns = "id, name, email, password_hash, created_at, updated_at"

// UserService holds the registration and account-update rules. Validation
// failures come back as an ordered message list; only infrastructure
// problems are returned as errors.
type UserService struct {
	db     DB
	hasher crypto.Hasher
}

func NewUserService(db DB, hasher crypto.Hasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateInput struct {
	Name  string
	Email string
	// Password nil means keep the stored hash unchanged.
	Password *string
}

// ValidateRegister checks every registration rule without persisting
// anything, so callers can report these failures alongside their own.
func (s *UserService) ValidateRegister(ctx context.Context, in RegisterInput) ([]string, error) {
	var verrs []string

	existing, err := s.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		verrs = append(verrs, MsgEmailExists)
	}
	if in.Password == "" {
		verrs = append(verrs, MsgPasswordRequired)
	}
	if in.Name == "" {
		verrs = append(verrs, MsgNameRequired)
	}
	return verrs, nil
}

// Register validates and persists a new user. All applicable rule failures
// are collected before returning; nothing is persisted unless every rule
// passes.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, []string, error) {
	verrs, err := s.ValidateRegister(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, nil, err
	}

	u := &model.User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	err = s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, now(), now())
		 RETURNING id, created_at, updated_at`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		// The unique index on email is the authoritative duplicate check;
		// the lookup above is only a fast path.
		if isUniqueViolation(err) {
			return nil, []string{MsgEmailExists}, nil
		}
		return nil, nil, fmt.Errorf("insert user: %w", err)
	}

	return u, nil, nil
}

// ValidateUpdate checks every update rule against the stored record without
// persisting anything.
func (s *UserService) ValidateUpdate(ctx context.Context, id int64, in UpdateInput) ([]string, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return []string{MsgUserNotFound}, nil
	}

	var verrs []string
	if in.Email != u.Email {
		existing, err := s.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			verrs = append(verrs, MsgEmailExists)
		}
	}
	if in.Password != nil && *in.Password == "" {
		verrs = append(verrs, MsgPasswordRequired)
	}
	return verrs, nil
}

// UpdateByID re-fetches the target record, applies the supplied fields and
// persists the result. A missing target short-circuits with "User not found."
func (s *UserService) UpdateByID(ctx context.Context, id int64, in UpdateInput) (*model.User, []string, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, []string{MsgUserNotFound}, nil
	}

	var verrs []string
	u.Name = in.Name

	if in.Email != u.Email {
		existing, err := s.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil {
			verrs = append(verrs, MsgEmailExists)
		} else {
			u.Email = in.Email
		}
	}

	newPassword := ""
	if in.Password != nil {
		if *in.Password == "" {
			verrs = append(verrs, MsgPasswordRequired)
		} else {
			newPassword = *in.Password
		}
	}

	if len(verrs) > 0 {
		return nil, verrs, nil
	}

	if newPassword != "" {
		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return nil, nil, err
		}
		u.PasswordHash = hash
	}

	err = s.db.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2, password_hash = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING updated_at`,
		u.Name, u.Email, u.PasswordHash, u.ID,
	).Scan(&u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, []string{MsgEmailExists}, nil
		}
		return nil, nil, fmt.Errorf("update user %d: %w", id, err)
	}

	return u, nil, nil
}

// GetByID returns the matching user, or nil when no record exists.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

// GetByEmail returns the user with the exact email, or nil when none exists.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (s *UserService) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
