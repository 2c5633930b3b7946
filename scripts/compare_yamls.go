package main

import (
	"flag"
	"log"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Checks that every key of a config dumped with -dump_config is documented in the example config.
func main() {
	examplePath := flag.String("example", "config/example_config.yaml", "path to the example config")
	dumpedPath := flag.String("dumped", "config/dumped_config.yaml", "path to the dumped config")
	flag.Parse()

	exampleConfig, err := readYAML(*examplePath)
	if err != nil {
		log.Fatal(err)
	}

	dumpedConfig, err := readYAML(*dumpedPath)
	if err != nil {
		log.Fatal(err)
	}

	missing := missingKeys(exampleConfig, dumpedConfig, "")
	if len(missing) > 0 {
		sort.Strings(missing)
		log.Fatalf("keys missing in %s: %s", *examplePath, strings.Join(missing, ", "))
	}
}

func readYAML(path string) (map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := make(map[string]interface{})
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, err
	}

	return config, nil
}

// missingKeys returns the dotted paths of keys in dumped which example lacks. Keys compare case-insensitive
// since viper lowercases all keys on dump.
func missingKeys(example, dumped map[string]interface{}, prefix string) []string {
	lowercase := make(map[string]interface{}, len(example))
	for k, v := range example {
		lowercase[strings.ToLower(k)] = v
	}

	var missing []string
	for key, value := range dumped {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		exampleValue, ok := lowercase[strings.ToLower(key)]
		if !ok {
			missing = append(missing, fullKey)
			continue
		}

		dumpedNested, isMap := value.(map[string]interface{})
		exampleNested, exampleIsMap := exampleValue.(map[string]interface{})
		if isMap && exampleIsMap {
			missing = append(missing, missingKeys(exampleNested, dumpedNested, fullKey)...)
		}
	}

	return missing
}
