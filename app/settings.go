package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olatundun-care/sitecms/internal/site"
)

func init() { //nolint: gochecknoinits
	settingsCmd.PersistentFlags().StringVar(
		&serverURL,
		"server",
		"http://localhost:3000",
		"Base URL of the running sitecms instance",
	)

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

var (
	serverURL string

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Inspect or edit site content on a running instance",
	}

	settingsGetCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Print all settings, or a single one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher := site.NewHTTPFetcher(serverURL)

			record, err := fetcher.Fetch(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				value, ok := record[args[0]]
				if !ok {
					return errors.Errorf("unknown setting %q", args[0])
				}

				cmd.Println(value)

				return nil
			}

			keys := make([]string, 0, len(record))
			for k := range record {
				keys = append(keys, k)
			}

			sort.Strings(keys)

			for _, k := range keys {
				cmd.Println(fmt.Sprintf("%s=%s", k, record[k]))
			}

			return nil
		},
	}

	settingsSetCmd = &cobra.Command{
		Use:   "set key=value [key=value ...]",
		Short: "Update settings on a running instance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := site.Record{}

			for _, arg := range args {
				key, value, found := strings.Cut(arg, "=")
				if !found || key == "" {
					return errors.Errorf("argument %q is not of the form key=value", arg)
				}

				pairs[key] = value
			}

			fetcher := site.NewHTTPFetcher(serverURL)

			if err := fetcher.Push(cmd.Context(), pairs); err != nil {
				return err
			}

			cmd.Printf("updated %d setting(s)\n", len(pairs))

			return nil
		},
	}
)
