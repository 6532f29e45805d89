package main

import (
	"errors"
	"fmt"

	"github.com/sliverarmory/shadenative/prefix"
	"github.com/sliverarmory/shadenative/selfpath"
	"github.com/spf13/cobra"
)

var (
	libraryName string
	resolveSelf bool
)

var rootCmd = &cobra.Command{
	Use:          "shadenative [library path]",
	Short:        "Recover the relocated package prefix mangled into a shaded native library's filename",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var libraryPath string
		switch {
		case resolveSelf:
			resolved, err := selfpath.Resolve()
			if err != nil {
				return err
			}
			libraryPath = resolved
		case len(args) == 1:
			libraryPath = args[0]
		default:
			return errors.New("a library path argument or --self is required")
		}

		if libraryName == "" {
			fmt.Fprintln(cmd.OutOrStdout(), libraryPath)
			return nil
		}

		packagePrefix, err := prefix.Parse(libraryPath, libraryName)
		if err != nil {
			return err
		}
		if packagePrefix == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "(no prefix)")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), packagePrefix)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&libraryName, "library-name", "", "Base library name to locate inside the path")
	rootCmd.Flags().BoolVar(&resolveSelf, "self", false, "Resolve the path of the module containing this process's code")
}
