package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/grovetools/pmux/pkg/project"
	"github.com/invopop/jsonschema"
)

func main() {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "toml",
	}

	schema := r.Reflect(&project.Project{})
	schema.Title = "pmux Project Configuration"
	schema.Description = "Schema for pmux project config files (TOML or YAML)."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	// Write to the package root
	if err := os.WriteFile("pmux.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated project schema at pmux.schema.json")
}
