package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-tables/internal/readme"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "List the generated sections in the output file",
		Long: `Check parses the output file after the marker token and prints each topic
heading with the number of rows in its table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := v.GetString("output")
			if output == "" {
				return fmt.Errorf("provide the file to check with --output")
			}

			sections, err := readme.Inspect(output, v.GetString("marker"))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			rows := 0
			for _, s := range sections {
				fmt.Fprintf(w, "%-40s %d\n", s.Topic, s.Rows)
				rows += s.Rows
			}
			fmt.Fprintf(w, "\nsections: %d, rows: %d\n", len(sections), rows)
			return nil
		},
	}
}
