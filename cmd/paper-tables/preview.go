package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-tables/internal/generate"
	"github.com/pdiddy/paper-tables/internal/preview"
)

func newPreviewCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [entries...]",
		Short: "Render the generated tables in the terminal",
		Long: `Preview loads the configured input, renders the topic tables, and displays
them in the terminal. The output file is not modified.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := generate.Render(loadConfig(cmd, v, args), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return preview.Write(cmd.OutOrStdout(), res.Sections, preview.Options{
				Style:    v.GetString("preview.style"),
				WordWrap: v.GetInt("preview.width"),
			})
		},
	}

	defaults := preview.DefaultOptions()
	cmd.Flags().String("style", defaults.Style, "glamour style: auto, dark, light, notty, dracula")
	cmd.Flags().Int("width", defaults.WordWrap, "word wrap width (0 disables wrapping)")

	_ = v.BindPFlag("preview.style", cmd.Flags().Lookup("style"))
	_ = v.BindPFlag("preview.width", cmd.Flags().Lookup("width"))
	return cmd
}
