package main

import (
	"context"
	"flag"
	"log"

	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/migrations/reportdb"
	"github.com/chainsafe/bridge-monitor/pkg/pgutil"
	mghelper "github.com/chainsafe/bridge-monitor/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for report database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, reportdb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err)
	}
}
