package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindtrack/internal/assessment"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take the five-question wellbeing self-assessment",
	Long: `Answer each question with 0-3, "b" to go back or "q" to quit.
This is a screening aid, not a diagnosis.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssessment(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runAssessment(in io.Reader, out io.Writer) error {
	q := assessment.New()
	sc := bufio.NewScanner(in)

	for !q.Completed() {
		n, total := q.Progress()
		question := q.Question()
		fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n", n, total, question.Text)
		for _, o := range question.Options {
			fmt.Fprintf(out, "  %d) %s\n", o.Value, o.Label)
		}
		fmt.Fprint(out, "> ")

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nAssessment cancelled.")
			return nil
		}
		switch answer := strings.ToLower(strings.TrimSpace(sc.Text())); answer {
		case "q", "quit":
			fmt.Fprintln(out, "Assessment cancelled.")
			return nil
		case "b", "back":
			q.Previous()
		default:
			v, err := strconv.Atoi(answer)
			if err != nil || q.Select(v) != nil {
				fmt.Fprintln(out, "Please answer with a number from 0 to 3.")
				continue
			}
			q.Next()
		}
	}

	r := assessment.Evaluate(q.Score())
	fmt.Fprintf(out, "\nYour Results\nScore: %d/%d (%.0f%%) - %s\n%s\n", r.Score, r.Max, r.Percent(), r.Severity, r.Message)
	fmt.Fprintf(out, "\n%s\n", r.Heading)
	for _, s := range r.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
	if len(r.Suggestions) == 0 {
		fmt.Fprintln(out, "  Keep up your healthy habits and self-care routines.")
	}
	return nil
}
