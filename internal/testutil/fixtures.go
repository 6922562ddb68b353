package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/averyhale/socialnet/internal/domain"
)

// AccountBuilder creates test accounts with a builder pattern
type AccountBuilder struct {
	name     string
	email    string
	password string
	bio      string
}

// NewAccountBuilder creates a new AccountBuilder with default values
func NewAccountBuilder() *AccountBuilder {
	suffix := uuid.New().String()[:8]
	return &AccountBuilder{
		name:     fmt.Sprintf("testaccount_%s", suffix),
		email:    fmt.Sprintf("test_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *AccountBuilder) WithPassword(password string) *AccountBuilder {
	b.password = password
	return b
}

// WithBio sets the bio
func (b *AccountBuilder) WithBio(bio string) *AccountBuilder {
	b.bio = bio
	return b
}

// Build creates the account in the database and returns it with the raw
// password
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Account, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	account := &domain.Account{
		ID:             uuid.New(),
		Name:           b.name,
		Email:          b.email,
		PasswordHash:   string(hashed),
		Bio:            b.bio,
		ProfilePicture: domain.DefaultProfilePicture,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	return account, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Account struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"account"`
	Token string `json:"token"`
}

// BuildAndAuthenticate creates an account via the API and returns it with an
// access token
func (b *AccountBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.Account, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/accounts"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to sign up account: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	accountID, _ := uuid.Parse(authResp.Account.ID)
	account := &domain.Account{
		ID:    accountID,
		Name:  authResp.Account.Name,
		Email: authResp.Account.Email,
	}

	return account, authResp.Token
}

// FollowEdge inserts a follow edge directly into the database
func FollowEdge(t *testing.T, db *gorm.DB, followerID, followeeID uuid.UUID) {
	t.Helper()

	follow := &domain.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	if err := db.Create(follow).Error; err != nil {
		t.Fatalf("failed to create follow edge: %v", err)
	}
}
