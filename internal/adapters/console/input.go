package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"route-planner-service/internal/domain"
	"strconv"
)

// ConsoleInputProvider prompts for counts, coordinates and profits on out and
// reads whitespace-separated numbers from in.
type ConsoleInputProvider struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsoleInputProvider(in io.Reader, out io.Writer) *ConsoleInputProvider {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &ConsoleInputProvider{in: sc, out: out}
}

func (c *ConsoleInputProvider) ReadRequest(ctx context.Context) (*domain.PlanRequest, error) {
	numDrivers, err := c.readInt("Enter number of drivers: ")
	if err != nil {
		return nil, fmt.Errorf("console input: number of drivers: %w", err)
	}
	numLocations, err := c.readInt("Enter number of delivery locations: ")
	if err != nil {
		return nil, fmt.Errorf("console input: number of locations: %w", err)
	}
	if numDrivers < 0 || numLocations < 0 {
		return nil, fmt.Errorf(
			"console input: drivers=%d locations=%d: %w",
			numDrivers, numLocations, domain.ErrInvalidInputSize,
		)
	}

	// counts are untrusted, so slices grow with the values actually read
	req := &domain.PlanRequest{}

	for i := 0; i < numDrivers; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := c.readPoint(fmt.Sprintf("Enter starting location (x, y) for driver %d: ", i+1))
		if err != nil {
			return nil, fmt.Errorf("console input: driver %d: %w", i+1, err)
		}
		req.Drivers = append(req.Drivers, p)
	}

	for i := 0; i < numLocations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := c.readPoint(fmt.Sprintf("Enter coordinates (x, y) for location %d: ", i+1))
		if err != nil {
			return nil, fmt.Errorf("console input: location %d: %w", i+1, err)
		}
		req.Locations = append(req.Locations, p)
	}

	for i := 0; i < numLocations; i++ {
		v, err := c.readInt(fmt.Sprintf("Enter profit/priority for location %d: ", i+1))
		if err != nil {
			return nil, fmt.Errorf("console input: profit %d: %w", i+1, err)
		}
		req.Profits = append(req.Profits, v)
	}

	return req, nil
}

func (c *ConsoleInputProvider) readInt(prompt string) (int, error) {
	tok, err := c.next(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("parse %q as integer: %w", tok, domain.ErrInvalidInput)
	}
	return v, nil
}

func (c *ConsoleInputProvider) readPoint(prompt string) (domain.Coordinates, error) {
	xs, err := c.next(prompt)
	if err != nil {
		return domain.Coordinates{}, err
	}
	ys, err := c.next("")
	if err != nil {
		return domain.Coordinates{}, err
	}

	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse %q as number: %w", xs, domain.ErrInvalidInput)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse %q as number: %w", ys, domain.ErrInvalidInput)
	}
	return domain.Coordinates{X: x, Y: y}, nil
}

func (c *ConsoleInputProvider) next(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return "", fmt.Errorf("read token: %w", io.ErrUnexpectedEOF)
	}
	return c.in.Text(), nil
}
