//go:build ignore

// Command schema reflects route.FinderConfig and tilemap.AsciiLegend into a
// JSON Schema document, the same reflector-tool shape
// effects/catalog/schema_generate.go uses for the effect catalog.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"routegrid/route"
	"routegrid/tilemap"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "output path for the JSON schema")
	flag.Parse()

	if outPath == "" {
		log.Fatal("schema: missing -out path")
	}

	schema := buildSchema()

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("schema: marshal schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("schema: create output dir: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("schema: write schema: %v", err)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	configSchema := reflector.Reflect(new(route.FinderConfig))
	configSchema.Title = "RouteFinder Config"
	configSchema.Description = "Constructor options accepted by route.NewRouteFinder."

	legendSchema := reflector.Reflect(new(tilemap.AsciiLegend))
	legendSchema.Title = "ASCII Tile Legend"
	legendSchema.Description = "Maps a rune in an ASCII map row to a packed tile flag word."

	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "routegrid config",
		Description: "Schemas for the tile-grid route finder's configuration types.",
		Definitions: jsonschema.Definitions{
			"FinderConfig": configSchema,
			"AsciiLegend":  legendSchema,
		},
	}
	return root
}
