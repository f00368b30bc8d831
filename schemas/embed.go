// Package schemas provides the embedded table definitions for each supported driver.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.sql
var files embed.FS

// Schema returns the DDL for driver. Every statement is safe to run on an existing database.
func Schema(driver string) (string, error) {
	content, err := files.ReadFile(driver + ".sql")
	if err != nil {
		return "", fmt.Errorf("no schema for driver %q: %w", driver, err)
	}
	return string(content), nil
}
