// Command seed fills the database with demo users, groups, posts and follow
// edges so the pages have something to show during local development.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yatube-dev/yatube/config"
	"github.com/yatube-dev/yatube/internal/model"
	"github.com/yatube-dev/yatube/internal/repository"
	"github.com/yatube-dev/yatube/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := 10
	postsPerUser := 15
	if s := os.Getenv("SEED_USERS"); s != "" {
		if v, e := strconv.Atoi(s); e == nil && v > 0 {
			users = v
		}
	}
	if s := os.Getenv("SEED_POSTS"); s != "" {
		if v, e := strconv.Atoi(s); e == nil && v > 0 {
			postsPerUser = v
		}
	}

	ctx := context.Background()
	followRepo := repository.NewFollowRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	groups := []model.Group{
		{Title: "Go", Slug: "go", Description: "Posts about Go"},
		{Title: "Cats", Slug: "cats", Description: "Posts about cats"},
	}
	for i := range groups {
		if err := db.Create(&groups[i]).Error; err != nil {
			log.Fatalf("seed group: %v", err)
		}
	}

	created := make([]model.User, 0, users)
	base := time.Now().Add(-time.Duration(users*postsPerUser) * time.Minute)
	for i := 0; i < users; i++ {
		u := model.User{Username: fmt.Sprintf("demo%02d", i), PasswordHash: string(hash)}
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("seed user: %v", err)
		}
		created = append(created, u)
		for p := 0; p < postsPerUser; p++ {
			post := model.Post{
				Text:      fmt.Sprintf("Post %d by %s", p, u.Username),
				AuthorID:  u.ID,
				CreatedAt: base.Add(time.Duration(i*postsPerUser+p) * time.Minute),
			}
			if p%2 == 0 {
				post.GroupID = &groups[p%len(groups)].ID
			}
			if err := db.Create(&post).Error; err != nil {
				log.Fatalf("seed post: %v", err)
			}
		}
	}

	// everyone follows the first author
	for _, u := range created[1:] {
		if err := followRepo.Create(ctx, u.ID, created[0].ID); err != nil {
			log.Fatalf("seed follow: %v", err)
		}
	}

	log.Printf("seeded %d users, %d posts, %d groups", users, users*postsPerUser, len(groups))
}
