// Package console is the line-oriented driver: each input line is one
// command, dispatched to a planner, with the answer printed to the output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/katalvlaran/weatherpath/network"
	"github.com/katalvlaran/weatherpath/planner"
	"github.com/katalvlaran/weatherpath/textio"
)

// Prompt is printed before each command when prompting is enabled.
const Prompt = "> "

const helpText = `commands:
  route <from> <to>                         shortest route under the active regime
  center                                    city with the smallest eccentricity
  distances <city>                          distances from a city to every other city
  connect <from> <to> <normal> <rain> <snow> <storm>
                                            open or overwrite a road
  weather <from> <to> <regime> <weight>     change one regime weight of a road
  interrupt <from> <to>                     close a road in every regime
  regime [name]                             show or switch the active regime
  cities                                    list known cities
  matrix [distance|adjacency]               print the matrix for the active regime
  save [path]                               write the road file
  help                                      this text
  quit | exit                               leave
`

// errUsage marks an arity or syntax problem with a command line.
var errUsage = errors.New("usage")

// Console reads commands from in and writes answers to out.
type Console struct {
	p        *planner.Planner
	in       io.Reader
	out      io.Writer
	log      *zap.Logger
	savePath string
	prompt   bool
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger used for command failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSavePath sets the default target of the save command.
func WithSavePath(path string) Option {
	return func(c *Console) { c.savePath = path }
}

// WithPrompt prints Prompt before reading each line.
func WithPrompt() Option {
	return func(c *Console) { c.prompt = true }
}

// New creates a Console over p.
func New(p *planner.Planner, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{p: p, in: in, out: out, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run processes lines until EOF, quit/exit, or cancellation of ctx. Command
// errors are printed and do not stop the loop.
//
// Lines are read on a separate goroutine so cancellation is noticed while a
// read is blocked. That goroutine exits at the next line or EOF of in.
func (c *Console) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if c.prompt {
			fmt.Fprint(c.out, Prompt)
		}
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := c.Exec(line)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			c.log.Debug("command failed", zap.String("line", line), zap.Error(err))
		}
		if quit {
			return nil
		}
	}
	if err := <-readErr; err != nil {
		return fmt.Errorf("console: read: %w", err)
	}

	return nil
}

// Exec runs a single command line. quit is true for quit/exit.
func (c *Console) Exec(line string) (quit bool, err error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(f[0]), f[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(c.out, helpText)
		return false, nil
	case "route":
		return false, c.route(args)
	case "center":
		return false, c.center(args)
	case "distances":
		return false, c.distances(args)
	case "connect":
		return false, c.connect(args)
	case "weather":
		return false, c.weather(args)
	case "interrupt":
		return false, c.interrupt(args)
	case "regime":
		return false, c.regime(args)
	case "cities":
		return false, c.cities(args)
	case "matrix":
		return false, c.matrix(args)
	case "save":
		return false, c.save(args)
	default:
		return false, fmt.Errorf("unknown command %q (try help)", f[0])
	}
}

func arity(args []string, want int, usage string) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s", errUsage, usage)
	}

	return nil
}

// FormatDistance prints one fractional digit, or ∞.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}

	return strconv.FormatFloat(d, 'f', 1, 64)
}

func (c *Console) route(args []string) error {
	if err := arity(args, 2, "route <from> <to>"); err != nil {
		return err
	}
	r, err := c.p.Route(args[0], args[1])
	if err != nil {
		return err
	}
	if !r.Reachable {
		fmt.Fprintf(c.out, "no route from %s to %s under %s\n", r.From, r.To, r.Regime)
		return nil
	}
	fmt.Fprintf(c.out, "%s -> %s [%s]: %s\n", r.From, r.To, r.Regime, FormatDistance(r.Distance))
	fmt.Fprintf(c.out, "path: %s\n", strings.Join(r.Path, " -> "))
	if len(r.Intermediates) == 0 {
		fmt.Fprintln(c.out, "via: direct")
	} else {
		fmt.Fprintf(c.out, "via: %s\n", strings.Join(r.Intermediates, ", "))
	}

	return nil
}

func (c *Console) center(args []string) error {
	if err := arity(args, 0, "center"); err != nil {
		return err
	}
	res, err := c.p.Center()
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintf(c.out, "no center under %s (%s): no city reaches every other city\n", res.Regime, res.Policy)
		return nil
	}
	fmt.Fprintf(c.out, "center [%s, %s]: %s (eccentricity %s)\n",
		res.Regime, res.Policy, res.City, FormatDistance(res.Eccentricity))
	d, err := c.p.DistancesFrom(res.City)
	if err != nil {
		return err
	}

	return c.table(res.City, d, false)
}

func (c *Console) distances(args []string) error {
	if err := arity(args, 1, "distances <city>"); err != nil {
		return err
	}
	d, err := c.p.DistancesFrom(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "from %s [%s]:\n", args[0], c.p.Active())

	return c.table(args[0], d, true)
}

// table prints d in city order, origin excluded. Cities missing from d are
// shown as ∞ when unreachable is set, otherwise omitted.
func (c *Console) table(origin string, d map[string]float64, unreachable bool) error {
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, city := range c.p.Network().Cities() {
		if city == origin {
			continue
		}
		v, ok := d[city]
		if !ok {
			if !unreachable {
				continue
			}
			v = math.Inf(1)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", city, FormatDistance(v))
	}

	return tw.Flush()
}

func parseWeight(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, network.ErrInvalidWeight)
	}

	return v, nil
}

func (c *Console) connect(args []string) error {
	if err := arity(args, 6, "connect <from> <to> <normal> <rain> <snow> <storm>"); err != nil {
		return err
	}
	var vals [network.NumRegimes]float64
	for i := range vals {
		v, err := parseWeight(args[2+i])
		if err != nil {
			return err
		}
		vals[i] = v
	}
	w := network.Weights{Normal: vals[0], Rain: vals[1], Snow: vals[2], Storm: vals[3]}
	if err := c.p.AddEdge(args[0], args[1], w); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "connected %s -> %s\n", args[0], args[1])

	return nil
}

func (c *Console) weather(args []string) error {
	if err := arity(args, 4, "weather <from> <to> <regime> <weight>"); err != nil {
		return err
	}
	r, err := network.ParseRegime(args[2])
	if err != nil {
		return err
	}
	w, err := parseWeight(args[3])
	if err != nil {
		return err
	}
	if err = c.p.UpdateRegime(args[0], args[1], r, w); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "updated %s -> %s [%s] = %s\n", args[0], args[1], r, FormatDistance(w))

	return nil
}

func (c *Console) interrupt(args []string) error {
	if err := arity(args, 2, "interrupt <from> <to>"); err != nil {
		return err
	}
	if err := c.p.RemoveEdge(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "interrupted %s -> %s\n", args[0], args[1])

	return nil
}

func (c *Console) regime(args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(c.out, "regime: %s\n", c.p.Active())
		return nil
	case 1:
		r, err := network.ParseRegime(args[0])
		if err != nil {
			return err
		}
		if err = c.p.SetActive(r); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "regime: %s\n", r)
		return nil
	default:
		return fmt.Errorf("%w: regime [name]", errUsage)
	}
}

func (c *Console) cities(args []string) error {
	if err := arity(args, 0, "cities"); err != nil {
		return err
	}
	for i, name := range c.p.Network().Cities() {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, name)
	}

	return nil
}

func (c *Console) matrix(args []string) error {
	kind := "distance"
	if len(args) > 1 {
		return fmt.Errorf("%w: matrix [distance|adjacency]", errUsage)
	}
	if len(args) == 1 {
		kind = strings.ToLower(args[0])
	}

	names := c.p.Network().Cities()
	var at func(i, j int) float64
	switch kind {
	case "distance":
		sol, err := c.p.Solution(c.p.Active())
		if err != nil {
			return err
		}
		d := sol.Distances()
		at = func(i, j int) float64 {
			v, _ := d.At(i, j)
			return v
		}
	case "adjacency":
		adj, err := c.p.Network().Adjacency(c.p.Active())
		if err != nil {
			return err
		}
		at = func(i, j int) float64 {
			v, _ := adj.At(i, j)
			return v
		}
	default:
		return fmt.Errorf("%w: matrix [distance|adjacency]", errUsage)
	}

	fmt.Fprintf(c.out, "%s matrix [%s]:\n", kind, c.p.Active())
	tw := tabwriter.NewWriter(c.out, 0, 4, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t", name)
	}
	fmt.Fprintln(tw)
	for i, name := range names {
		fmt.Fprintf(tw, "%s\t", name)
		for j := range names {
			fmt.Fprintf(tw, "%s\t", FormatDistance(at(i, j)))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func (c *Console) save(args []string) error {
	path := c.savePath
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return fmt.Errorf("%w: save [path]", errUsage)
	}
	if path == "" {
		return fmt.Errorf("%w: save <path> (no default file)", errUsage)
	}
	if err := textio.SaveFile(path, c.p.Network()); err != nil {
		return err
	}
	c.log.Info("roads saved", zap.String("path", path))
	fmt.Fprintf(c.out, "saved %s\n", path)

	return nil
}
