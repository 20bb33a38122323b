// Package convert moves documents between config trees and other
// representations: YAML and TOML text, and plain Go values.
//
// Imports build a new *config.Store:
//
//	store, err := convert.FromYAML(data, convert.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
// Exports walk any handle. TOML requires an object at the top; fields
// holding null are dropped since TOML has no null.
//
// Load and Save pick the codec from the file extension, so a .yaml file
// can be rewritten as .sjson without the caller choosing a codec.
package convert
