package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chromasynth/go-seadream/internal/cases"
	"github.com/chromasynth/go-seadream/internal/client"
	"github.com/chromasynth/go-seadream/internal/config"
	"github.com/chromasynth/go-seadream/internal/playground"
)

// Generate command flags
var (
	genBrief  string
	genTheme  string
	genModel  string
	genCase   string
	genTags   string
	genJSON   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate prompts for a brief from the command line",
	Long: `Send a brief to the backend and print the generated blueprint
and per-model prompts. With --case, the preset's brief, theme and
tags are used as defaults for any flag not given.

Examples:
  seadream generate --brief "neon diner at dusk" --theme cinematic
  seadream generate --case launch_teaser --tags "retro, chrome"
  seadream generate --brief "glass pavilion" --json`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genBrief, "brief", "b", "", "briefing text")
	generateCmd.Flags().StringVarP(&genTheme, "theme", "t", "", "theme key (default cinematic)")
	generateCmd.Flags().StringVarP(&genModel, "model", "m", "", "model name (default from config)")
	generateCmd.Flags().StringVar(&genCase, "case", "", "preset case id to start from")
	generateCmd.Flags().StringVar(&genTags, "tags", "", "comma-separated tags")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "output the full session as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	req := playground.GenerateRequest{
		Brief: genBrief,
		Theme: genTheme,
		Model: genModel,
		Tags:  playground.ParseTags(genTags),
	}

	if genCase != "" {
		catalog := cases.NewCatalog(cfg.CasesPath)
		all, cerr := catalog.Load(cmd.Context())
		if cerr != nil {
			return cerr
		}
		c, ok := all[genCase]
		if !ok {
			return fmt.Errorf("preset %q not found in %s", genCase, catalog.Path())
		}
		if req.Brief == "" {
			req.Brief = c.Brief
		}
		if req.Theme == "" && playground.ValidTheme(c.Theme) {
			req.Theme = c.Theme
		}
		if len(req.Tags) == 0 {
			req.Tags = c.Tags
		}
		req.CaseID = genCase
	}

	if req.Brief == "" {
		return errors.New("a briefing is required: pass --brief or --case")
	}
	if req.Theme == "" {
		req.Theme = string(playground.ThemeCinematic)
	}
	if req.Model == "" {
		req.Model = cfg.Model
	}

	base := cfg.BackendURL
	if backendURL != "" {
		base = backendURL
	}
	gw := client.New(base)

	sess, err := gw.Generate(cmd.Context(), req)
	if err != nil {
		var verr *client.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%s (missing: %v)", verr.Message, verr.FieldPaths())
		}
		return err
	}

	if genJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sess)
	}

	fmt.Println(sess.Blueprint)
	models := make([]string, 0, len(sess.Prompts))
	for name := range sess.Prompts {
		models = append(models, name)
	}
	sort.Strings(models)
	for _, name := range models {
		fmt.Printf("\n## %s\n%s\n", name, sess.Prompts[name])
	}
	if len(sess.ChecklistQuestions) > 0 {
		fmt.Println("\n## Checklist")
		for _, q := range sess.ChecklistQuestions {
			fmt.Printf("- %s\n", q)
		}
	}
	return nil
}
