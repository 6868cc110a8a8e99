// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// trace traces with key 'lpi.cli'.
func trace() tracing.Trace {
	return tracing.Select("lpi.cli")
}

// Formatter writes items to the terminal. It returns false if it does not
// know how to display an item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter displays strings, errors, tables and hierarchical
// objects. Anything else is shown by type.
type DefaultFormatter struct{}

// Format writes item to w.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case error:
		_, err = fmt.Fprintf(w, "✗ %s\n", t.Error())
	case map[string]interface{}:
		var y []byte
		if y, err = yaml.Marshal(t); err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(w, "▶ Hierarchical object:\n%s", y)
	case table.Writer:
		_, err = fmt.Fprintln(w, t.Render())
	case nil:
		_, err = io.WriteString(w, "▶ (nothing)\n")
	default:
		_, err = fmt.Fprintf(w, "▶ object of type %T\n", t)
	}
	return err == nil, err
}
