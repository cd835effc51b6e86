package main

import (
	"uniform/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models. The repositories
// use plain gorm today, so the output is opt-in tooling for ad hoc reporting queries.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	gen.ApplyBasic(postgres.Models...)

	gen.Execute()
}
