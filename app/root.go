// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitecms",
	Short: "sitecms serves the Olatundun care center website with editable content",
	Long: `sitecms serves the Olatundun Nursing Home and Geriatric Center marketing
website together with an admin dashboard and a JSON API through which all
text and image fields of the site can be edited at runtime.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
