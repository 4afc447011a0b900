// Command schema writes the JSON schema of the configuration file
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/smimonitor/noticias/pkg/config"
)

func main() {
	r := jsonschema.Reflector{ExpandedStruct: true}
	schema := r.Reflect(&config.Config{})
	schema.Title = "noticias configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("can't marshal schema: %v", err)
	}

	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := os.WriteFile(out, data, 0o600); err != nil {
		log.Fatalf("can't write %s: %v", out, err)
	}
	fmt.Printf("schema written to %s\n", out)
}
