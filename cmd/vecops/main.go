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
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "vecops",
		Short: "Vertical aggregation over list columns",
		Long: "vecops reads a JSON column of rows (arrays of numbers, null for a\n" +
			"null row, e.g. [[1,2],null,[3,4]]) and aggregates it across rows,\n" +
			"position by position.",
	}
	root.PersistentFlags().String("name", "a", "column name")
	root.PersistentFlags().Bool("strict", false, "fail on null rows instead of skipping them")
	addCommands(root)
	cobra.CheckErr(root.Execute())
}
