package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"route-planner-service/internal/domain"
	"strconv"
)

// ConsoleOutputSink prints one line per driver route and the profit ranking.
type ConsoleOutputSink struct {
	out io.Writer
}

func NewConsoleOutputSink(out io.Writer) *ConsoleOutputSink {
	return &ConsoleOutputSink{out: out}
}

func (c *ConsoleOutputSink) WritePlan(ctx context.Context, plan *domain.Plan) error {
	w := bufio.NewWriter(c.out)

	for _, r := range plan.Routes {
		fmt.Fprintf(w, "Driver %d delivery route: ", r.DriverID)
		for _, s := range r.Stops {
			fmt.Fprintf(w, "(%s, %s) ", formatCoord(s.X), formatCoord(s.Y))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, "Location priority order:")
	for _, idx := range plan.PriorityOrder {
		// locations are numbered from 1 in prompts
		fmt.Fprintf(w, " %d", idx+1)
	}
	fmt.Fprintln(w)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("console output: flush: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
