package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/postpulse/internal/dataset"
	"github.com/KaramelBytes/postpulse/internal/render"
)

var (
	accStats  bool
	accFormat string
	accOutput string
)

type accountEntry struct {
	Username string `json:"username" yaml:"username"`
	Profile  string `json:"profile" yaml:"profile"`
}

type accountsReport struct {
	Dataset   string             `json:"dataset" yaml:"dataset"`
	Records   int                `json:"records" yaml:"records"`
	Accounts  []accountEntry     `json:"accounts" yaml:"accounts"`
	Coercions *dataset.Coercions `json:"coercions,omitempty" yaml:"coercions,omitempty"`
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts in the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		names := dataset.ListAccounts(ds.Records)

		rep := accountsReport{Dataset: ds.Name, Records: len(ds.Records), Accounts: make([]accountEntry, len(names))}
		for i, n := range names {
			rep.Accounts[i] = accountEntry{Username: n, Profile: dataset.ProfileReference(ds.Records, n, cfg.ProfileMarker)}
		}
		if accStats {
			rep.Coercions = &ds.Coercions
		}
		b, structured, err := encode(rep, accFormat)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !structured {
			return renderText(out, accOutput, "account list", func(r *render.Terminal) {
				r.Accounts(ds.Records, names, cfg.ProfileMarker)
				if accStats {
					r.Coercions(ds.Name, len(ds.Records), ds.Coercions)
				}
			})
		}
		return emit(out, accOutput, "account list", b)
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.Flags().BoolVar(&accStats, "stats", false, "also report fields coerced to defaults while loading")
	accountsCmd.Flags().StringVar(&accFormat, "format", "text", "output format: text|json|yaml")
	accountsCmd.Flags().StringVarP(&accOutput, "output", "o", "", "optional path to write the list")
}
