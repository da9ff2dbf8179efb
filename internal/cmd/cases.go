package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chromasynth/go-seadream/internal/cases"
	"github.com/chromasynth/go-seadream/internal/config"
	"github.com/chromasynth/go-seadream/internal/playground"
	"github.com/chromasynth/go-seadream/internal/render"
)

// Cases command flags
var (
	casesPath string
	casesJSON bool
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List preset cases from the catalog",
	RunE:  runCases,
}

func init() {
	casesCmd.Flags().StringVar(&casesPath, "file", "", "catalog file (default from config)")
	casesCmd.Flags().BoolVar(&casesJSON, "json", false, "output as JSON")
}

func runCases(cmd *cobra.Command, args []string) error {
	path := casesPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.Default()
		}
		path = cfg.CasesPath
	}

	catalog := cases.NewCatalog(path)
	all, err := catalog.Load(cmd.Context())
	if err != nil {
		return err
	}

	if casesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	records := render.CaseRecords(all)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTHEME\tTAGS")
	for _, rec := range records {
		if rec.Kind != render.KindCase {
			fmt.Fprintf(w, "-\t%s\t-\t-\n", rec.Body)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.ID, rec.Title, rec.Subtitle, playground.JoinTags(rec.Tags))
	}
	return w.Flush()
}
