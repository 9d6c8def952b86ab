package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/auth"
	"github.com/icodeu/site-content/pkg/sitecontent/config"
)

const usage = `Site Content Admin CLI

A lightweight admin tool that only requires database access.

USAGE:
  admin <command> [options]

COMMANDS:
  create     Create an admin account
  contacts   List submitted contact messages

ENVIRONMENT VARIABLES:
  DATABASE_URL      "memory" or PostgreSQL connection string

  Configuration can be loaded from a .env file in the current directory.

EXAMPLES:
  # Create the first admin account
  admin create --username=editor --email=editor@example.com --password=changeme123

  # Show the latest 20 contact messages
  admin contacts --limit=20
`

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	store, err := cfg.BuildStore()
	if err != nil {
		log.Fatalf("failed to build store: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		runCreate(ctx, cfg, store, os.Args[2:])
	case "contacts":
		runContacts(ctx, store, os.Args[2:])
	default:
		fmt.Print(usage)
		os.Exit(1)
	}
}

func runCreate(ctx context.Context, cfg *config.ServerConfig, store sitecontent.Store, args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	username := fs.String("username", "", "admin username (required)")
	email := fs.String("email", "", "admin email (required)")
	password := fs.String("password", "", "admin password (required, min 8 chars)")
	_ = fs.Parse(args)

	if *username == "" || *email == "" || *password == "" {
		fs.Usage()
		os.Exit(1)
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	authenticator := auth.New(store, cfg.JWTSecret, cfg.TokenTTL)
	admin, err := authenticator.Register(ctx, *username, *email, *password)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	fmt.Printf("created admin %s (%s)\n", admin.Username, admin.ID)
}

func runContacts(ctx context.Context, store sitecontent.Store, args []string) {
	fs := flag.NewFlagSet("contacts", flag.ExitOnError)
	limit := fs.Int("limit", 50, "maximum number of messages to show")
	offset := fs.Int("offset", 0, "number of messages to skip")
	_ = fs.Parse(args)

	messages, err := store.ListContactMessages(ctx, *offset, *limit)
	if err != nil {
		log.Fatalf("failed to list contact messages: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIVED\tNAME\tEMAIL\tMESSAGE")
	for _, msg := range messages {
		created := msg.CreatedAt
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			sitecontent.FormatReadableTime(&created), msg.Name, msg.Email, msg.Message)
	}
	w.Flush()
}
