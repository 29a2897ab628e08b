package contracts

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed seed_listings_schema.json
var seedListingsSchemaRaw string

var seedListingsSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	const resource = "seed-listings.json"
	if err := compiler.AddResource(resource, strings.NewReader(seedListingsSchemaRaw)); err != nil {
		log.Fatalf("failed to add seed listings schema resource: %v", err)
	}

	schema, err := compiler.Compile(resource)
	if err != nil {
		log.Fatalf("failed to compile seed listings schema: %v", err)
	}
	seedListingsSchema = schema
}

// ValidateSeedListings valida el archivo de datos inicial contra el
// esquema antes de importarlo. Un archivo inválido aborta el arranque:
// es preferible fallar temprano a servir datos corruptos.
func ValidateSeedListings(body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("seed file is not valid JSON: %w", err)
	}

	if err := seedListingsSchema.Validate(v); err != nil {
		return fmt.Errorf("seed file JSON schema validation failed: %w", err)
	}
	return nil
}
