package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchgrade/search"
)

func newMethodsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the search methods a manifest may name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			reg := search.NewRegistry(search.RegistryOptions{Seed: cfg.Seed, FlounderGiveUp: cfg.FlounderGiveUp})
			for _, name := range reg.Names() {
				m, _ := reg.Lookup(name)
				kind := "extra"
				if m.Standard {
					kind = "standard"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", name, kind); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
