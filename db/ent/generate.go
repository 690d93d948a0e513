package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:   "gen/ent",
			Package:  "github.com/aferrand/decisions-collector/gen/ent",
			Schema:   "github.com/aferrand/decisions-collector/db/ent/schema",
			Features: []gen.Feature{gen.FeatureUpsert},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
