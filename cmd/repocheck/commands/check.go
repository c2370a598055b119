package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rorepo/repo"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <input.yaml>",
		Short: "Construct a repository from an input document and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var input map[string]any
			if err := yaml.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("failed to parse input document: %w", err)
			}

			var opts []repo.Option
			if requireSetters {
				opts = append(opts, repo.RequireSetters())
			}
			if allowDuplicates {
				opts = append(opts, repo.AllowDuplicates())
			}

			r, err := repo.New(doc.Schema(), input, opts...)
			if err != nil {
				return err
			}

			out, err := json.Marshal(r)
			if err != nil {
				return err
			}

			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&requireSetters, "require-setters", false, "fail on fields assigned without a setter hook")
	cmd.Flags().BoolVar(&allowDuplicates, "allow-duplicates", false, "skip the duplicate field name check")

	return cmd
}
