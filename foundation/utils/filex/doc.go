// File: doc.go
// Title: File Utilities Package Documentation
// Description: Package filex provides the file helpers used by configuration
//              discovery and the dandelion CLI.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

/*
Package filex provides small file utilities with structured errors.

	data, err := filex.ReadFile("data.json")      // CodeNotFound if missing
	err = filex.WriteFileAtomic("out.yaml", data, 0o644)
	path, ok := filex.FirstFile("a.toml", "a.yaml")

WriteFileAtomic writes to a temporary file in the target directory and
renames it, so a failed write leaves any existing file untouched.
*/
package filex
