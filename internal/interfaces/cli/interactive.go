package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/form"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/view"
)

const interactiveHelp = `Commands:
  length=50 | length 50     set a field (length, width, thickness, price)
  slider 4.5                set thickness from the slider (1 to 10, 0.5 steps)
  show                      print the current estimate
  order                     print the recommended order range
  reset                     restore the defaults
  help                      show this help
  quit                      exit
`

// InteractiveOptions are the flags of the interactive command.
type InteractiveOptions struct {
	*GlobalOptions
}

// NewCmdInteractive builds the interactive command.
func NewCmdInteractive(global *GlobalOptions) *cobra.Command {
	o := &InteractiveOptions{GlobalOptions: global}
	return &cobra.Command{
		Use:   "interactive",
		Short: "Edit the calculator fields line by line; every change re-renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			return o.Run(cmd.Context(), e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// Run reads commands from in until quit or end of input.
func (o *InteractiveOptions) Run(ctx context.Context, e *env, in io.Reader, out io.Writer) error {
	settings := e.service.Settings()
	fm := form.New(
		form.WithDensity(settings.Density),
		form.WithDefaultThickness(settings.DefaultThickness),
	)
	log := e.logger().WithContext(ctx).With("component", "interactive")

	fmt.Fprint(out, interactiveHelp)
	unsubscribe := fm.Subscribe(view.NewTextRenderer(out, e.formatter))
	defer unsubscribe()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		name, value := splitCommand(scanner.Text())
		switch strings.ToLower(name) {
		case "":
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprint(out, interactiveHelp)
		case "show":
			fmt.Fprint(out, e.formatter.Text(fm.Result()))
		case "order":
			fmt.Fprint(out, e.formatter.Recommendation(fm.Breakdown().Recommend(settings.WasteLowPct, settings.WasteHighPct)))
		case "reset":
			fm.Reset()
		case "slider":
			pos, err := strconv.ParseFloat(value, 64)
			if err != nil {
				fmt.Fprintf(out, "slider position must be a number between %s and %s\n",
					view.FormatTons(estimator.SliderMin), view.FormatTons(estimator.SliderMax))
				continue
			}
			fm.SetThicknessSlider(pos)
		default:
			field, err := form.ParseField(name)
			if err != nil {
				fmt.Fprintf(out, "%v (type help for commands)\n", err)
				continue
			}
			log.Debug("Field changed", "field", field, "raw", value)
			// ParseField only yields known fields
			_ = fm.Set(field, value)
		}
	}
	return scanner.Err()
}

// splitCommand splits "name=value" or "name value".
func splitCommand(line string) (name, value string) {
	line = strings.TrimSpace(line)
	if n, v, ok := strings.Cut(line, "="); ok {
		return strings.TrimSpace(n), strings.TrimSpace(v)
	}
	n, v, _ := strings.Cut(line, " ")
	return n, strings.TrimSpace(v)
}
