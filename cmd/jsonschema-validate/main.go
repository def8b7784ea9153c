// Command jsonschema-validate checks a JSON instance document against a JSON
// Schema document, printing each validation error with its instance path.
package main

import (
	"fmt"
	"log"
	"os"

	jsonschema "github.com/mdboom/jsonschema-valid"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <schema.json> <instance.json>", os.Args[0])
	}

	schemaBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("reading schema: %v", err)
	}
	instanceBytes, err := os.ReadFile(os.Args[2])
	if err != nil {
		log.Fatalf("reading instance: %v", err)
	}

	cfg, err := jsonschema.CompileSchema(schemaBytes)
	if err != nil {
		log.Fatalf("compiling schema: %v", err)
	}

	result, err := cfg.Validate(instanceBytes)
	if err != nil {
		log.Fatalf("decoding instance: %v", err)
	}

	if result.IsValid() {
		fmt.Println("valid")
		return
	}

	fmt.Println("invalid:")
	for _, e := range result.ToSlice() {
		fmt.Printf("  %s: %s\n", e.InstancePointer(), e.Message)
	}
	os.Exit(1)
}
