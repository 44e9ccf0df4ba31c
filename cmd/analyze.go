package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pable/go-cricket-metrics/internal/aggregator"
	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/pipeline"
)

const analyzeSystemPrompt = `You are a T20 cricket analyst. You are given summary tables computed from a
ball-by-ball log and a question from the user.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise. Compare seasons when the question allows it.

Glossary:
- Boundary: a legal delivery with 4 or 6 runs off the bat.
- Next-ball outcome: runs_total of the delivery after a boundary in the same innings,
  labelled 0, 1, 2, 3, 4, 6, or Other (extras and 5s). Boundaries on the last ball
  of an innings are excluded.
- Percentages are within one (year, boundary type) group and sum to 100.
- dot_ball_pct: share of boundaries followed by a 0.
- avg_next3: mean runs_total over the three deliveries after a boundary.
- trend: number of 4s and 6s hit in each year, including last-ball boundaries.`

var analyzeYear int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <question>",
	Short: "AI-powered grounded analysis of the boundary tables (requires ANTHROPIC_API_KEY)",
	Long: `Send the computed summary tables to the Anthropic API together with a
question and stream back an answer grounded in those numbers.

Example:
  cricmetrics analyze "Are batters more likely to go big after a six than after a four?"
  cricmetrics analyze --year 2023 "How did the dot-ball rate after a 4 change?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.IntVar(&analyzeYear, "year", 0, "only send tables for this season")
	f.String("model", "", "Anthropic model to use (default claude-haiku-4-5-20251001)")
	f.String("api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
	f.Int("max-tokens", 0, "maximum tokens in the answer (default 1024)")

	for key, flag := range map[string]string{
		"analyze.model":      "model",
		"analyze.api_key":    "api-key",
		"analyze.max_tokens": "max-tokens",
	} {
		if err := v.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	res, err := loadResult()
	if err != nil {
		return err
	}
	if analyzeYear != 0 && !res.HasYear(analyzeYear) {
		return fmt.Errorf("no boundary data for %d", analyzeYear)
	}

	contextJSON, err := buildAnalysisContext(res, analyzeYear)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	zap.L().Debug("analysis context built",
		zap.Int("bytes", len(contextJSON)),
		zap.String("model", cfg.Analyze.Model),
	)

	return callAnthropic(cmd.Context(), cfg.Analyze.APIKey, cfg.Analyze.Model, int64(cfg.Analyze.MaxTokens), contextJSON, question)
}

// buildAnalysisContext serialises the summary tables into compact JSON,
// keyed by year and boundary type. year 0 keeps every season.
func buildAnalysisContext(res *pipeline.Result, year int) (string, error) {
	type groupEntry struct {
		Year       int                `json:"year"`
		Boundary   int                `json:"boundary"`
		Count      int                `json:"boundaries_hit"`
		Outcomes   map[string]float64 `json:"next_ball_pct"`
		DotBallPct float64            `json:"dot_ball_pct"`
		AvgNext3   float64            `json:"avg_next3"`
		Samples    int                `json:"samples"`
	}

	dots := make(map[model.GroupKey]model.DotBallRow, len(res.DotBalls))
	for _, r := range res.DotBalls {
		dots[model.GroupKey{Year: r.Year, RunsBatter: r.RunsBatter}] = r
	}
	next3 := make(map[model.GroupKey]model.Next3AvgRow, len(res.Next3))
	for _, r := range res.Next3 {
		next3[model.GroupKey{Year: r.Year, RunsBatter: r.RunsBatter}] = r
	}

	var groups []groupEntry
	for _, y := range res.Years {
		if year != 0 && y != year {
			continue
		}
		fours, sixes := aggregator.YearTotals(res.Trends, y)
		for _, bt := range model.BoundaryTypes {
			key := model.GroupKey{Year: y, RunsBatter: bt}
			dist := aggregator.Lookup(res.Outcomes, y, bt)
			pcts := make(map[string]float64, len(dist))
			for o, p := range dist {
				pcts[string(o)] = round2(p)
			}
			g := groupEntry{
				Year:       y,
				Boundary:   bt,
				Count:      fours,
				Outcomes:   pcts,
				DotBallPct: round2(dots[key].DotBallPct),
				AvgNext3:   round2(next3[key].AvgNext3),
				Samples:    dots[key].Boundaries,
			}
			if bt == 6 {
				g.Count = sixes
			}
			groups = append(groups, g)
		}
	}

	ov := aggregator.Summarize(res.Deliveries)
	doc := map[string]interface{}{
		"subject":      "boundary next-ball analysis",
		"deliveries":   ov.Deliveries,
		"matches":      ov.Matches,
		"boundary_set": ov.BoundarySet,
		"last_ball":    ov.TerminalHits,
		"years":        res.Years,
		"groups":       groups,
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// round2 rounds a non-negative float64 to 2 decimal places.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID string, maxTokens int64, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY, analyze.api_key, or use --api-key")
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed, check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
