package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/pipeline"
	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Load the ball log once and explore it interactively. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	res, err := loadResult()
	if err != nil {
		return err
	}

	cGreeting.Println("cricmetrics shell")
	cMuted.Printf("%d deliveries, %d boundaries with a next ball, seasons %v\n",
		len(res.Deliveries), len(res.Boundaries), res.Years)
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("cricmetrics")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "reload":
			fresh, err := loadResult()
			if err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			if fresh.Hash == res.Hash {
				cMuted.Println("ball log unchanged")
			} else {
				cMuted.Printf("reloaded %s (%d deliveries)\n", shortID(fresh.Hash), len(fresh.Deliveries))
			}
			res = fresh
		case "outcomes":
			shellOutcomes(res, args)
		case "compare":
			shellCompare(res, args)
		case "trend":
			report.PrintTrendTable(os.Stdout, res.Trends)
		case "dots":
			report.PrintDotBallTable(os.Stdout, res.DotBalls)
		case "next3":
			report.PrintNext3Table(os.Stdout, res.Next3)
		case "years":
			report.PrintYears(os.Stdout, res.Years)
		case "summary":
			printSummary(os.Stdout, res)
		case "innings":
			shellInnings(res, args)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"outcomes [year] [4|6]", "next-ball chart (default latest year, 4s)"},
		{"compare <year1> <year2> [4|6]", "two seasons side by side"},
		{"trend", "4s and 6s per year"},
		{"dots", "dot-ball percentage after a boundary"},
		{"next3", "average runs in the 3 balls after a boundary"},
		{"years", "seasons with boundary data"},
		{"summary", "ball log overview"},
		{"innings <match_id> [innings]", "ball-by-ball rows with derived columns"},
		{"reload", "re-read the ball log"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-32s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

// shellInts parses positional integer arguments.
func shellInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out = append(out, n)
	}
	return out, nil
}

func shellOutcomes(res *pipeline.Result, args []string) {
	nums, err := shellInts(args)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	year, runs := 0, 4
	if len(nums) > 0 {
		year = nums[0]
	}
	if len(nums) > 1 {
		runs = nums[1]
	}
	if err := validBoundaryType(runs); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if year, err = resolveYear(res, year); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintOutcomeChart(os.Stdout, res.Outcomes, year, runs)
	report.PrintMetricCards(os.Stdout, res.Trends, year)
}

func shellCompare(res *pipeline.Result, args []string) {
	nums, err := shellInts(args)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(nums) < 2 {
		cError.Fprintln(os.Stderr, "usage: compare <year1> <year2> [4|6]")
		return
	}
	runs := 4
	if len(nums) > 2 {
		runs = nums[2]
	}
	if err := validBoundaryType(runs); err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	years := nums[:2]
	for i, y := range years {
		if years[i], err = resolveYear(res, y); err != nil {
			cError.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
	}
	report.PrintCompareChart(os.Stdout, res.Outcomes, years[0], years[1], runs)
	report.PrintMetricCards(os.Stdout, res.Trends, years[0], years[1])
}

func shellInnings(res *pipeline.Result, args []string) {
	if len(args) == 0 || len(args) > 2 {
		cError.Fprintln(os.Stderr, "usage: innings <match_id> [innings]")
		return
	}
	matchID, innings, err := parseInningsArgs(args)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	rows := filterInnings(res.Deliveries, matchID, innings, false)
	if len(rows) == 0 {
		cMuted.Println("no deliveries for that match")
		return
	}
	report.PrintDeliveryTable(os.Stdout, rows)
}
