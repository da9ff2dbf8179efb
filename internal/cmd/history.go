package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chromasynth/go-seadream/internal/client"
	"github.com/chromasynth/go-seadream/internal/config"
	"github.com/chromasynth/go-seadream/internal/playground"
	"github.com/chromasynth/go-seadream/internal/render"
)

// History command flags
var (
	historyLiked bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List generated sessions",
	Long: `List session history from the backend, newest first.

Examples:
  seadream history              # all sessions
  seadream history --liked      # liked references only
  seadream history --json       # machine-readable output`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&historyLiked, "liked", "l", false, "only liked sessions")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	base := cfg.BackendURL
	if backendURL != "" {
		base = backendURL
	}
	gw := client.New(base)

	history, err := gw.History(cmd.Context())
	if err != nil {
		return err
	}

	tab := playground.TabAll
	if historyLiked {
		tab = playground.TabLiked
	}

	if historyJSON {
		sessions := history
		if historyLiked {
			sessions = nil
			for _, s := range history {
				if s.Liked {
					sessions = append(sessions, s)
				}
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}

	records := render.HistoryRecords(history, tab)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tTHEME\tLIKED\tBRIEF")
	for _, rec := range records {
		if rec.Kind != render.KindSession {
			fmt.Fprintf(w, "-\t-\t-\t-\t%s\n", rec.Body)
			continue
		}
		liked := ""
		if rec.Liked {
			liked = "♥"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", rec.ID, rec.Subtitle, rec.Title, liked, rec.Body)
	}
	return w.Flush()
}
