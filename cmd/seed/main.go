package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/companyinfo-backend/internal/app"
	"github.com/yungbote/companyinfo-backend/internal/data/db"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

func main() {
	var file string
	var dryRun bool
	flag.StringVar(&file, "file", "", "seed document (yaml); defaults to the embedded directory seed")
	flag.BoolVar(&dryRun, "dry-run", false, "print what would be inserted without writing")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	doc, err := loadDocument(file)
	if err != nil {
		fmt.Printf("load seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("seed %q: countries=%d companies=%d contacts=%d\n",
		doc.Name, len(doc.Countries), len(doc.Companies), len(doc.Contacts))
	if dryRun {
		return
	}

	store, err := db.NewService(log, app.LoadDBConfig(log))
	if err != nil {
		fmt.Printf("init database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := db.AutoMigrateAll(store.DB()); err != nil {
		fmt.Printf("automigrate: %v\n", err)
		os.Exit(1)
	}
	applied, err := db.Seed(context.Background(), store.DB(), log, doc)
	if err != nil {
		fmt.Printf("seed: %v\n", err)
		os.Exit(1)
	}
	if applied {
		fmt.Println("seed applied")
	} else {
		fmt.Println("seed already applied; nothing to do")
	}
}

func loadDocument(path string) (*db.SeedDocument, error) {
	if path == "" {
		return db.DefaultSeed()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return db.ParseSeed(raw)
}
