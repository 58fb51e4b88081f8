// File: document.go
// Title: Document Input and Output
// Description: Reads documents from files or stdin into ordered Dicts and
//              resolves the output format from flags, configuration and the
//              input document.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/utils/filex"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

// stdinPath names standard input as a document source
const stdinPath = "-"

// readDocument decodes the document at path. The format comes from the
// extension, then from hint, and is JSON otherwise.
func readDocument(cmd *cobra.Command, path string, hint mapx.Format) (*mapx.Dict[string, any], mapx.Format, error) {
	const op = "cmd.readDocument"

	var (
		data []byte
		err  error
	)
	format := hint
	if path == stdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		if f := mapx.FormatFromPath(path); f != mapx.FormatUnknown {
			format = f
		}
		data, err = filex.ReadFile(path)
	}
	if err != nil {
		return nil, mapx.FormatUnknown, dlerror.Wrap(err, "failed to read document").
			WithOperation(op).
			WithDetail("path", path)
	}

	if format == mapx.FormatUnknown {
		format = mapx.FormatJSON
	}
	d, err := mapx.Decode(data, format)
	if err != nil {
		return nil, format, dlerror.Wrap(err, "failed to decode "+path).
			WithOperation(op).
			WithDetail("path", path)
	}
	return d, format, nil
}

// parseFormatFlag turns a --format style value into a Format; empty is
// FormatUnknown
func parseFormatFlag(name, value string) (mapx.Format, error) {
	if value == "" {
		return mapx.FormatUnknown, nil
	}
	f, ok := mapx.ParseFormat(value)
	if !ok {
		return mapx.FormatUnknown, dlerror.Newf("invalid %s %q: want json, yaml or toml", name, value).
			WithCode(dlerror.CodeInvalidInput).
			WithDetail("flag", name)
	}
	return f, nil
}

// outputFormat picks the flag, then output.format from the configuration,
// then the format of the input
func (a *app) outputFormat(flag string, input mapx.Format) (mapx.Format, error) {
	f, err := parseFormatFlag("format", flag)
	if err != nil || f != mapx.FormatUnknown {
		return f, err
	}
	if f, ok := mapx.ParseFormat(a.cfg.GetString("output.format")); ok {
		return f, nil
	}
	return input, nil
}

// writeDocument encodes d to path, or to stdout when path is empty
func writeDocument(cmd *cobra.Command, d *mapx.Dict[string, any], format mapx.Format, path string) error {
	data, err := mapx.Encode(d, format)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return filex.WriteFileAtomic(path, data, 0o644)
}
