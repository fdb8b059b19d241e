package spellcheck

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/redactyl/spellcheck/internal/config"
	"github.com/redactyl/spellcheck/internal/dictionary"
)

func newConfigCmd(opts *options) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration from global, local and --config files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fc, err := loadFileConfig(opts.configPath)
			if err != nil {
				return err
			}
			b, err := fc.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	show.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")

	var (
		output     string
		locale     string
		exceptions string
		failOn     string
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .spellcheck.yml with the given defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fc := config.FileConfig{
				Locale:     strPtr(locale),
				Exceptions: strPtr(exceptions),
				NoColor:    boolPtr(opts.noColor),
			}
			if failOn != "" {
				fc.FailOn = strPtr(failOn)
			}
			b, err := yaml.Marshal(&fc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, b, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", output)
			return nil
		},
	}
	initCmd.Flags().StringVar(&output, "output", ".spellcheck.yml", "output file path")
	initCmd.Flags().StringVar(&locale, "locale", dictionary.DefaultLocale, "system dictionary locale")
	initCmd.Flags().StringVar(&exceptions, "exceptions", "exceptions.txt", "exception list path")
	initCmd.Flags().StringVar(&failOn, "fail-on", "", "fail threshold: info|major")

	cfgCmd.AddCommand(show, initCmd)
	return cfgCmd
}
