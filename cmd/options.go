/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/promptran/internal/catalog"
)

var optionsJSON bool

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List suggested dialects and the tone and plurality choices",
	Long: `List the modifier values offered to clients.

Dialects are suggestions; any dialect name is accepted by "translate" and
the HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		out := cmd.OutOrStdout()

		if optionsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DIALECT\tTAG\tNATIVE\tENGLISH")
		for _, d := range c.Dialects {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.Tag, d.Native, d.English)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nTones:       %v\n", c.Tones)
		fmt.Fprintf(out, "Pluralities: %v\n", c.Pluralities)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)

	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "Print as JSON")
}
