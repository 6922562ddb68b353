package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/averyhale/socialnet/internal/domain"
	"github.com/averyhale/socialnet/internal/password"
	"github.com/averyhale/socialnet/internal/repository"
)

type AccountService struct {
	accounts repository.AccountRepository
	follows  repository.FollowRepository
}

func NewAccountService(accounts repository.AccountRepository, follows repository.FollowRepository) *AccountService {
	return &AccountService{
		accounts: accounts,
		follows:  follows,
	}
}

type CreateAccountInput struct {
	Name           string
	Email          string
	Password       string
	Bio            string
	ProfilePicture string
	Website        string
	Location       string
	IsPrivate      bool
}

// UpdateAccountInput is the whitelist of mutable fields. Anything not listed
// here cannot be changed through Update, and unknown fields in a request body
// simply decode to nothing.
type UpdateAccountInput struct {
	Name           *string `json:"name"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	IsPrivate      *bool   `json:"isPrivate"`
	Password       *string `json:"password"`
}

func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateName(name); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	if err := validateBio(input.Bio); err != nil {
		return nil, err
	}

	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	picture := input.ProfilePicture
	if picture == "" {
		picture = domain.DefaultProfilePicture
	}

	account := &domain.Account{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		Bio:            input.Bio,
		ProfilePicture: picture,
		Website:        input.Website,
		Location:       input.Location,
		IsPrivate:      input.IsPrivate,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login resolves an account by email and verifies the password. Unknown
// emails and wrong passwords fail identically.
func (s *AccountService) Login(ctx context.Context, email, plain string) (*domain.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plain, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}

func (s *AccountService) Update(ctx context.Context, id uuid.UUID, input UpdateAccountInput) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		account.Name = name
	}
	if input.Bio != nil {
		if err := validateBio(*input.Bio); err != nil {
			return nil, err
		}
		account.Bio = *input.Bio
	}
	if input.ProfilePicture != nil {
		account.ProfilePicture = *input.ProfilePicture
	}
	if input.Website != nil {
		account.Website = *input.Website
	}
	if input.Location != nil {
		account.Location = *input.Location
	}
	if input.IsPrivate != nil {
		account.IsPrivate = *input.IsPrivate
	}
	if input.Password != nil {
		if err := validatePassword(*input.Password); err != nil {
			return nil, err
		}
		hash, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}

	account.UpdatedAt = time.Now()

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.accounts.Delete(ctx, id)
}

// Profile assembles the outward representation of an account, including both
// sides of its relationship sets.
func (s *AccountService) Profile(ctx context.Context, account *domain.Account) (*domain.Profile, error) {
	followers, err := s.follows.FollowerIDs(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.FollowingIDs(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return domain.NewProfile(account, followers, following), nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", domain.ErrValidation, domain.MaxNameLength)
	}
	return nil
}

func validateBio(bio string) error {
	if utf8.RuneCountInString(bio) > domain.MaxBioLength {
		return fmt.Errorf("%w: bio must be at most %d characters", domain.ErrValidation, domain.MaxBioLength)
	}
	return nil
}

func validatePassword(plain string) error {
	if len(plain) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, domain.MinPasswordLength)
	}
	return nil
}
