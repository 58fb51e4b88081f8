// File: ops.go
// Title: Operation Parsing
// Description: Parses --op arguments of the apply command into mapping
//              operations on an ordered Dict.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

// operation is one parsed --op argument
type operation struct {
	name string
	arg  string
	run  func(d *mapx.Dict[string, any]) error
}

// loader reads the document an operation argument refers to
type loader func(path string) (*mapx.Dict[string, any], error)

// operationHelp lists the accepted --op forms
const operationHelp = `  reset=FILE        replace the contents with FILE
  merge=FILE        update with the entries of FILE, later values win
  invert            swap keys and values; values must be hashable
  filter            drop entries with empty values
  filter-keys       drop entries with empty keys
  keep=K1,K2        keep only the named keys
  delete=K1,K2      remove the named keys
  set=K:V           store V under K
  setdefault=K:V    store V under K unless K is present
  clear             remove all entries`

// parseOps parses every --op value before any of them runs, so a bad
// argument or a missing file leaves the document untouched
func parseOps(flags []string, load loader) ([]operation, error) {
	ops := make([]operation, 0, len(flags))
	for _, flag := range flags {
		op, err := parseOp(flag, load)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOp(flag string, load loader) (operation, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(flag), "=")
	op := operation{name: name, arg: arg}

	needArg := func() error {
		if !hasArg || arg == "" {
			return errOperation(flag, "operation "+name+" needs an argument")
		}
		return nil
	}

	switch name {
	case "reset", "merge":
		if err := needArg(); err != nil {
			return op, err
		}
		other, err := load(arg)
		if err != nil {
			return op, err
		}
		if name == "reset" {
			op.run = func(d *mapx.Dict[string, any]) error {
				d.Reset(other)
				return nil
			}
		} else {
			op.run = func(d *mapx.Dict[string, any]) error {
				_, err := d.Update(other)
				return err
			}
		}

	case "invert", "filter", "filter-keys", "clear":
		if hasArg {
			return op, errOperation(flag, "operation "+name+" takes no argument")
		}
		op.run = simpleOps[name]

	case "keep", "delete":
		if err := needArg(); err != nil {
			return op, err
		}
		keys := strings.Split(arg, ",")
		if name == "keep" {
			op.run = func(d *mapx.Dict[string, any]) error {
				d.FilterKeys(func(k string) bool { return slices.Contains(keys, k) })
				return nil
			}
		} else {
			op.run = func(d *mapx.Dict[string, any]) error {
				d.Delete(keys...)
				return nil
			}
		}

	case "set", "setdefault":
		if err := needArg(); err != nil {
			return op, err
		}
		key, text, ok := strings.Cut(arg, ":")
		if !ok || key == "" {
			return op, errOperation(flag, "operation "+name+" expects KEY:VALUE")
		}
		value := parseScalar(text)
		if name == "set" {
			op.run = func(d *mapx.Dict[string, any]) error {
				d.Set(key, value)
				return nil
			}
		} else {
			op.run = func(d *mapx.Dict[string, any]) error {
				d.SetDefault(key, value)
				return nil
			}
		}

	default:
		return op, errOperation(flag, fmt.Sprintf("unknown operation %q", name))
	}
	return op, nil
}

// simpleOps are the operations that take no argument
var simpleOps = map[string]func(d *mapx.Dict[string, any]) error{
	"invert": invertDocument,
	"filter": func(d *mapx.Dict[string, any]) error {
		d.RemoveEmpty()
		return nil
	},
	"filter-keys": func(d *mapx.Dict[string, any]) error {
		d.FilterKeys(nil)
		return nil
	},
	"clear": func(d *mapx.Dict[string, any]) error {
		d.Clear()
		return nil
	},
}

// invertDocument swaps keys and values. Values become keys in their string
// form, so 1 and "1" collide and the later entry wins.
func invertDocument(d *mapx.Dict[string, any]) error {
	inverted, err := mapx.Invert(d)
	if err != nil {
		return err
	}
	out := mapx.New[string, any]()
	for value, key := range inverted.All() {
		out.Set(fmt.Sprint(value), key)
	}
	d.Reset(out)
	return nil
}

// parseScalar reads a command-line value as YAML, so 3 is an int, true a
// bool and {a: 1} a mapping. Anything YAML rejects stays a string.
func parseScalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	if v == nil && raw == "" {
		return ""
	}
	return v
}

func errOperation(flag, message string) error {
	return dlerror.New(message).
		WithCode(dlerror.CodeInvalidOperation).
		WithOperation("cmd.parseOp").
		WithDetail("op", flag)
}
