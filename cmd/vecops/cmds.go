/*
 * Copyright 2025 The VecOps Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vecops/vecops"
	"github.com/vecops/vecops/column"
)

func addCommands(root *cobra.Command) {
	ops := []struct {
		name  string
		short string
	}{
		{"sum", "Sum each position across rows"},
		{"mean", "Average each position across rows (per-position divisor)"},
		{"min", "Minimum at each position across rows"},
		{"max", "Maximum at each position across rows"},
		{"diff", "Row-to-row difference at each position"},
	}
	for _, op := range ops {
		name := op.name
		cmd := &cobra.Command{
			Use:   name + " [file]",
			Short: op.short,
			Args:  cobra.MaximumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				runOperation(cmd, name, args)
			}}
		root.AddCommand(cmd)
	}
}

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func runOperation(cmd *cobra.Command, op string, args []string) {
	name, _ := cmd.Flags().GetString("name")
	strict, _ := cmd.Flags().GetBool("strict")

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	col, err := loadColumn(path, name)
	if err != nil {
		fatal("%s", err)
	}

	var options []vecops.Option
	if strict {
		options = append(options, vecops.WithStrictNulls())
	}
	engine := vecops.New(options...)

	out, err := engine.Execute(op, col)
	if err != nil {
		fatal("%s", err)
	}
	if err := printColumn(out); err != nil {
		fatal("%s", err)
	}
}

// loadColumn reads a JSON array of rows from a file, or stdin when the
// path is "-". The element type is Int64 unless any value carries a
// fractional part.
func loadColumn(path, name string) (*column.Column, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	elem := column.Int64
	for _, row := range raw {
		values, ok := row.([]interface{})
		if row != nil && !ok {
			return nil, errors.Errorf("row must be an array of numbers or null, got %T", row)
		}
		for _, v := range values {
			if v == nil {
				continue
			}
			f, ok := v.(float64)
			if !ok {
				return nil, errors.Errorf("element must be a number or null, got %T", v)
			}
			if f != math.Trunc(f) {
				elem = column.Float64
			}
		}
	}

	col := column.NewList(name, elem)
	for _, row := range raw {
		if row == nil {
			col.AppendNullRow()
			continue
		}
		values := row.([]interface{})
		converted := make([]interface{}, len(values))
		for j, v := range values {
			if v == nil {
				continue
			}
			f := v.(float64)
			if elem == column.Int64 {
				converted[j] = int64(f)
			} else {
				converted[j] = f
			}
		}
		col.AppendRow(converted...)
	}
	return col, nil
}

// printColumn writes the rows back as JSON. Non-finite floats (a mean
// position with zero contributors) are rendered as null, since JSON has
// no representation for them.
func printColumn(col *column.Column) error {
	rows := make([]interface{}, col.Len())
	for i := 0; i < col.Len(); i++ {
		row, present := col.Row(i)
		if !present {
			continue
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
				continue
			}
			values[j] = v
		}
		rows[i] = values
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	fmt.Println(string(data))
	return nil
}
