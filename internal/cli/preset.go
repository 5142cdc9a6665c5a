package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tagcloud/internal/project"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named layout settings",
	}
	cmd.AddCommand(newPresetSaveCmd())
	cmd.AddCommand(newPresetListCmd())
	return cmd
}

func newPresetSaveCmd() *cobra.Command {
	var settings settingsOpts

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the configured settings plus any overrides under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envFromContext(cmd.Context())

			s, err := resolveSettings(cmd, env.settings(), settings, env)
			if err != nil {
				return err
			}
			presets, err := project.LoadPresets(env.presetsPath())
			if err != nil {
				return err
			}
			presets, err = project.UpsertPreset(presets, project.Preset{Name: args[0], Settings: s})
			if err != nil {
				return err
			}
			if err := project.SavePresets(env.presetsPath(), presets); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Saved preset %s", args[0])
			return nil
		},
	}

	addSettingsFlags(cmd, &settings)
	return cmd
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envFromContext(cmd.Context())
			presets, err := project.LoadPresets(env.presetsPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(presets) == 0 {
				fmt.Fprintln(out, StyleDim.Render("no presets saved"))
				return nil
			}

			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, []string{
					p.Name,
					p.Settings.Center.String(),
					strconv.FormatFloat(p.Settings.AngleStep, 'f', 4, 64),
					strconv.Itoa(p.Settings.DistanceStep),
					strconv.Itoa(p.Settings.MaxRadius),
					strconv.FormatBool(p.Settings.SortLargestFirst),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Center", "Angle step", "Distance step", "Max radius", "Largest first"}, rows))
			return nil
		},
	}
}
