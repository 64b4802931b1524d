// Command createstaff creates or updates an admin account.
//
//	createstaff -username registrar -email registrar@example.edu -password s3cret
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/noticeboard/internal/models"
	"github.com/noah-isme/noticeboard/internal/repository"
	"github.com/noah-isme/noticeboard/pkg/config"
	"github.com/noah-isme/noticeboard/pkg/database"
	"github.com/noah-isme/noticeboard/pkg/logger"
)

func main() {
	username := flag.String("username", "", "account username (required)")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password (required)")
	staff := flag.Bool("staff", true, "grant admin access")
	flag.Parse()

	if strings.TrimSpace(*username) == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logr.Fatal("failed to hash password", zap.Error(err))
	}

	user := &models.User{
		Username:     strings.TrimSpace(*username),
		Email:        strings.TrimSpace(*email),
		PasswordHash: string(hash),
		IsStaff:      *staff,
		IsActive:     true,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.NewUserRepository(db).Upsert(ctx, user); err != nil {
		logr.Fatal("failed to save account", zap.Error(err))
	}

	fmt.Printf("account %s saved (id %s, staff=%t)\n", user.Username, user.ID, user.IsStaff)
}
