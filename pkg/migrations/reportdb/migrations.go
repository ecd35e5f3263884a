// Package reportdb holds all the migrations for the report database
package reportdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the report database
var Migrations = migrate.NewMigrations()
