// Command seed bulk-loads accounts and follow edges from a JSON file. All
// accounts go through the service layer so validation, email uniqueness, and
// password hashing apply exactly as they do for live signups.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/averyhale/socialnet/internal/config"
	"github.com/averyhale/socialnet/internal/domain"
	"github.com/averyhale/socialnet/internal/repository/postgres"
	"github.com/averyhale/socialnet/internal/service"
)

type seedFile struct {
	Accounts []seedAccount `json:"accounts"`
	Follows  []seedFollow  `json:"follows"`
}

type seedAccount struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	IsPrivate      bool   `json:"isPrivate"`
}

// seedFollow references accounts by email so seed files stay readable.
type seedFollow struct {
	Follower string `json:"follower"`
	Followee string `json:"followee"`
}

func main() {
	file := flag.String("file", "seeds.json", "path to the seed file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, cfg)

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	var seeds seedFile
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	ctx := context.Background()

	created := 0
	for _, s := range seeds.Accounts {
		_, err := services.Account.Create(ctx, service.CreateAccountInput{
			Name:           s.Name,
			Email:          s.Email,
			Password:       s.Password,
			Bio:            s.Bio,
			ProfilePicture: s.ProfilePicture,
			Website:        s.Website,
			Location:       s.Location,
			IsPrivate:      s.IsPrivate,
		})
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				log.Printf("skipping %s: already exists", s.Email)
				continue
			}
			log.Fatalf("failed to create account %s: %v", s.Email, err)
		}
		created++
	}
	log.Printf("created %d accounts", created)

	followed := 0
	for _, f := range seeds.Follows {
		a, err := repos.Account.GetByEmail(ctx, normalize(f.Follower))
		if err != nil {
			log.Fatalf("unknown follower %s: %v", f.Follower, err)
		}
		b, err := repos.Account.GetByEmail(ctx, normalize(f.Followee))
		if err != nil {
			log.Fatalf("unknown followee %s: %v", f.Followee, err)
		}
		if _, err := services.Graph.Follow(ctx, a.ID, b.ID); err != nil {
			log.Fatalf("failed to follow %s -> %s: %v", f.Follower, f.Followee, err)
		}
		followed++
	}
	log.Printf("created %d follow edges", followed)
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
