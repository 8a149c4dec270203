// Package seed populates the database with demo data for development and
// testing. Never run it against production.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devlink/internal/gravatar"
	"devlink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores a plaintext marker instead of hashing, for fast
	// repeated seeding in dev. Seeded accounts cannot log in when set.
	SkipBcrypt bool
}

var statuses = []string{
	"Junior Developer", "Developer", "Senior Developer", "Student or Learning",
	"Instructor or Teacher", "Intern", "Manager", "Freelancer",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "HTML", "CSS", "React",
	"Node.js", "PostgreSQL", "Redis", "Docker", "Kubernetes", "AWS", "Git",
}

// Seed populates the database with demo users, profiles, posts, likes, and
// comments.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Printf("warning: could not clear existing data: %v", err)
		}
	}

	users, err := createUsers(db, opts)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := createProfiles(db, users); err != nil {
		return fmt.Errorf("failed to create profiles: %w", err)
	}

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createLikes(db, users, posts); err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	if err := createComments(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents so foreign keys do not block the deletes.
	tables := []any{
		&models.Like{}, &models.Comment{}, &models.Post{},
		&models.Education{}, &models.Profile{}, &models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, opts Options) ([]*models.User, error) {
	password := "password123"
	hashed := password
	if !opts.SkipBcrypt {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed = string(h)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		name := gofakeit.Name()
		email := strings.ToLower(fmt.Sprintf("%s%d@%s",
			strings.ReplaceAll(name, " ", "."), gofakeit.Number(10, 99), gofakeit.DomainName()))

		user := &models.User{
			Name:     name,
			Email:    email,
			Password: hashed,
			Avatar:   gravatar.URL(email),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createProfiles(db *gorm.DB, users []*models.User) error {
	for _, user := range users {
		// Roughly a quarter of users have not filled out a profile yet.
		if rand.Intn(4) == 0 {
			continue
		}

		skills := make([]string, 0, 4)
		for _, idx := range rand.Perm(len(skillPool))[:2+rand.Intn(3)] {
			skills = append(skills, skillPool[idx])
		}

		profile := &models.Profile{
			UserID:   user.ID,
			Status:   statuses[rand.Intn(len(statuses))],
			Company:  gofakeit.Company(),
			Website:  gofakeit.URL(),
			Location: fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
			Bio:      gofakeit.Sentence(12),
			Skills:   skills,
		}
		if err := db.Create(profile).Error; err != nil {
			return err
		}

		from := time.Now().AddDate(-3-rand.Intn(8), 0, 0)
		to := from.AddDate(3+rand.Intn(2), 0, 0)
		education := &models.Education{
			ProfileID:    profile.ID,
			School:       fmt.Sprintf("%s University", gofakeit.City()),
			Degree:       "BSc",
			FieldOfStudy: "Computer Science",
			From:         from,
			To:           &to,
			Description:  gofakeit.Sentence(8),
		}
		if err := db.Create(education).Error; err != nil {
			return err
		}
	}
	return nil
}

func createPosts(db *gorm.DB, users []*models.User, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		post := &models.Post{
			Text:   gofakeit.Paragraph(1, 2, 8, " "),
			UserID: author.ID,
			Name:   author.Name,
			Avatar: author.Avatar,
			// spread creation times over the last 90 days
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour),
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createLikes(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for _, user := range users {
			// Authors never like their own posts.
			if user.ID == post.UserID || rand.Intn(3) != 0 {
				continue
			}
			like := &models.Like{UserID: user.ID, PostID: post.ID}
			if err := db.Create(like).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createComments(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for i := 0; i < rand.Intn(4); i++ {
			commenter := users[rand.Intn(len(users))]
			comment := &models.Comment{
				Text:   gofakeit.Sentence(10),
				UserID: commenter.ID,
				PostID: post.ID,
				Name:   commenter.Name,
				Avatar: commenter.Avatar,
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
