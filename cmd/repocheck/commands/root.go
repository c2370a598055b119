package commands

import (
	"github.com/spf13/cobra"

	"rorepo/schema"
)

var (
	schemaPath string
	doc        *schema.Document

	requireSetters  bool
	allowDuplicates bool
)

func Execute() error {
	root := &cobra.Command{
		Use:          "repocheck",
		Short:        "Validate data documents against a field schema",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			doc, err = schema.LoadFile(schemaPath)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "schema.yaml", "path to the YAML schema document")

	root.AddCommand(checkCmd(), fieldsCmd())

	return root.Execute()
}
