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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/promptran/internal/catalog"
	"github.com/valpere/promptran/internal/translation"
)

var (
	inputFile  string
	outputFile string
	sourceLang string
	targetLang string

	dialect   string
	tone      string
	plurality string

	swapLangs   bool
	printPrompt bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text once and print the result",
	Long: `Translate text given as arguments, read from --input, or read from stdin
when neither is given (or --input is "-").

Modifiers:
  --dialect     e.g. "Mexican Spanish" or its tag "es-MX" (see "promptran options")
  --tone        formal | informal
  --plurality   singular | plural

Use --print-prompt to show the composed prompt without calling the model.

Example:
  promptran translate --from English --to Spanish --dialect "Mexican Spanish" --tone formal "How are you?"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, err := readText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		from, to := sourceLang, targetLang
		if swapLangs {
			from, to = to, from
		}

		// A catalogue tag such as es-MX resolves to its dialect name; anything
		// else is sent as given.
		dialectName := dialect
		if d, ok := catalog.Default().Lookup(dialect); ok {
			dialectName = d.Name
		}

		req := translation.Request{Text: text, From: from, To: to}
		if dialect != "" || tone != "" || plurality != "" {
			req.Options = &translation.Options{
				Dialect:   dialectName,
				Tone:      translation.Tone(tone),
				Plurality: translation.Plurality(plurality),
			}
		}

		if err := translation.Validate(req); err != nil {
			return err
		}

		if printPrompt {
			fmt.Fprintf(cmd.OutOrStdout(), "[system]\n%s\n\n[user]\n%s\n", translation.SystemPrompt, translation.ComposePrompt(req))
			return nil
		}

		svc, err := buildService(cmd.Context())
		if err != nil {
			return err
		}

		res, err := svc.Translate(cmd.Context(), req)
		if err != nil {
			return err
		}

		return writeText(cmd.OutOrStdout(), res.Translation)
	},
}

func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		if inputFile != "" {
			return "", errors.New("pass text either as arguments or with --input, not both")
		}
		return strings.Join(args, " "), nil
	}

	var (
		data []byte
		err  error
	)
	if inputFile == "" || inputFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(inputFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func writeText(stdout io.Writer, text string) error {
	if outputFile == "" || outputFile == "-" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (\"-\" for stdin)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the translation (default stdout)")
	translateCmd.Flags().StringVarP(&sourceLang, "from", "f", "English", "Source language")
	translateCmd.Flags().StringVarP(&targetLang, "to", "t", "Spanish", "Target language")
	translateCmd.Flags().StringVar(&dialect, "dialect", "", "Target dialect")
	translateCmd.Flags().StringVar(&tone, "tone", "", "Tone: formal or informal")
	translateCmd.Flags().StringVar(&plurality, "plurality", "", "Plurality: singular or plural")
	translateCmd.Flags().BoolVar(&swapLangs, "swap", false, "Swap --from and --to")
	translateCmd.Flags().BoolVar(&printPrompt, "print-prompt", false, "Print the composed prompt and exit without calling the model")
}
