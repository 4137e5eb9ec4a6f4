package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"blueprint/internal/blueprint"
	"blueprint/internal/bodygraph"
	"blueprint/internal/logging"
)

// chartFile is the on-disk chart: a birth instant plus optional longitude
// maps keyed by planet name. Omitted maps are fetched from the ephemeris; a
// null longitude marks that one body as absent.
type chartFile struct {
	Birth       string              `yaml:"birth"`
	Personality map[string]*float64 `yaml:"personality"`
	Design      map[string]*float64 `yaml:"design"`
}

// present drops null entries so they stay absent instead of reading as 0°.
func present(raw map[string]*float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for name, v := range raw {
		if v != nil {
			out[name] = *v
		}
	}
	return out
}

func loadChart(path string) (blueprint.Request, error) {
	var req blueprint.Request

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read chart: %w", err)
	}
	var cf chartFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return req, fmt.Errorf("failed to parse chart %s: %w", path, err)
	}
	if cf.Birth == "" {
		return req, fmt.Errorf("chart %s: birth is required", path)
	}
	req.Birth, err = time.Parse(time.RFC3339, cf.Birth)
	if err != nil {
		return req, fmt.Errorf("chart %s: birth: %w", path, err)
	}
	if cf.Personality != nil {
		if req.Personality, err = bodygraph.ParseLongitudes(present(cf.Personality)); err != nil {
			return req, fmt.Errorf("chart %s: personality: %w", path, err)
		}
	}
	if cf.Design != nil {
		if req.Design, err = bodygraph.ParseLongitudes(present(cf.Design)); err != nil {
			return req, fmt.Errorf("chart %s: design: %w", path, err)
		}
	}
	return req, nil
}

func (a *app) classifyCmd() *cobra.Command {
	var (
		chartPath string
		format    string
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify the chart in a YAML file",
		Long: `Reads a chart file and prints its classification.

Chart file:
  birth: "1990-06-15T08:00:00-04:00"
  personality: {sun: 84.02, moon: 201.4}
  design: {sun: 356.3}

Either longitude map may be omitted; it is then computed by the
configured ephemeris program.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := a.outputFormat(format)
			if err != nil {
				return err
			}
			req, err := loadChart(chartPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := blueprint.NewFromConfig(a.cfg)
			timer := logging.StartTimerOn(a.logger, "classify")
			resp, err := svc.Classify(ctx, req)
			timer.Stop()
			if err != nil && !errors.Is(err, blueprint.ErrAuditMismatch) {
				return err
			}
			a.logger.Debug("chart classified",
				zap.String("id", resp.ID),
				zap.String("personality_source", resp.PersonalitySource),
				zap.String("design_source", resp.DesignSource))

			out := cmd.OutOrStdout()
			if outFormat == "json" {
				if werr := writeJSON(out, resp); werr != nil {
					return werr
				}
			} else {
				a.renderResult(out, resp)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&chartPath, "chart", "", "Chart YAML file (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or text (default from config)")
	_ = cmd.MarkFlagRequired("chart")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) renderResult(w io.Writer, resp *blueprint.Response) {
	s := a.styles
	r := resp.Result

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("%s · %s · %s", r.Type, r.Authority, r.Profile)))
	b.WriteString("\n")
	b.WriteString(s.Row("Definition", r.Definition.String()) + "\n")
	b.WriteString(s.Row("Strategy", r.Strategy) + "\n")
	b.WriteString(s.Row("Not-self", r.NotSelfTheme) + "\n")
	b.WriteString(s.Row("Signature", r.Signature) + "\n")
	b.WriteString(s.Row("Cross", r.IncarnationCross) + "\n")
	b.WriteString(s.Row("Authority", r.AuthorityGuidance) + "\n")

	b.WriteString(s.Heading.Render("Centers") + "\n")
	for _, c := range bodygraph.AllCenters {
		st := r.Centers.Get(c)
		state := s.Open.Render(fmt.Sprintf("open %3d%%", st.OpennessPercent))
		if st.Defined {
			state = s.Defined.Render("defined")
		}
		b.WriteString("  " + s.Row(c.String(), state) + "\n")
	}

	b.WriteString(s.Heading.Render("Channels") + "\n")
	if len(r.Channels) == 0 {
		b.WriteString("  " + s.Open.Render("none") + "\n")
	}
	for _, ch := range r.Channels {
		b.WriteString("  " + s.Row(ch.Key, ch.Name) + "\n")
	}

	b.WriteString(s.Heading.Render("Activations") + "\n")
	writeLayer(&b, s.Row, "personality", r.Gates.Personality)
	writeLayer(&b, s.Row, "design", r.Gates.Design)

	if r.Metadata.UsedFallbackDesignPositions {
		b.WriteString("\n" + s.Warning.Render("design positions approximated ("+resp.DesignSource+")") + "\n")
	}
	if resp.Audit != nil && !resp.Audit.OK() {
		b.WriteString("\n" + s.Error.Render("audit mismatch: "+strings.Join(resp.Audit.Mismatches, "; ")) + "\n")
	}
	fmt.Fprint(w, b.String())
}

func writeLayer(b *strings.Builder, row func(string, string) string, name string, acts []bodygraph.Activation) {
	parts := make([]string, 0, len(acts))
	for _, act := range acts {
		parts = append(parts, act.Planet.String()+" "+act.Notation())
	}
	b.WriteString("  " + row(name, strings.Join(parts, ", ")) + "\n")
}
