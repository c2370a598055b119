package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Print the declared field table",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, fd := range doc.Fields {
				line := fd.Name

				if fd.Required {
					line += " (required)"
				}
				if fd.Hidden {
					line += " (hidden)"
				}
				if fd.Default != nil {
					line += fmt.Sprintf(" default=%v", fd.Default)
				}

				fmt.Println(line)
			}

			return nil
		},
	}
}
