package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/chart"
)

// CurveOptions are the flags of the curve command.
type CurveOptions struct {
	*GlobalOptions

	Length string
	Width  string
	Price  string
	HTML   string
	JSON   bool
}

// NewCmdCurve builds the curve command.
func NewCmdCurve(global *GlobalOptions) *cobra.Command {
	o := &CurveOptions{GlobalOptions: global}
	cmd := &cobra.Command{
		Use:     "curve",
		Short:   "Show tonnage and cost at every thickness slider stop",
		Example: `  asphalt curve --length 50 --width 20 --price 80 --html curve.html`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), cmd)
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

// Bind registers the curve flags.
func (o *CurveOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Length, "length", "l", o.Length, "Length in feet")
	fs.StringVarP(&o.Width, "width", "w", o.Width, "Width in feet")
	fs.StringVarP(&o.Price, "price", "p", o.Price, "Price per ton")
	fs.StringVar(&o.HTML, "html", o.HTML, "Write an HTML line chart to this path")
	fs.BoolVar(&o.JSON, "json", o.JSON, "Write the points as JSON")
}

// Run prints the curve and optionally charts it.
func (o *CurveOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	e, err := o.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	resp := e.service.Curve(ctx, dto.CurveRequest{
		Length: dto.Number(o.Length),
		Width:  dto.Number(o.Width),
		Price:  dto.Number(o.Price),
	})

	out := cmd.OutOrStdout()
	if o.JSON {
		if err := writeJSON(out, resp); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, e.formatter.CurveTable(resp.Points))
	}

	if o.HTML == "" {
		return nil
	}
	f, err := os.Create(o.HTML)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := chart.RenderCurve(f, resp.Points, chart.Options{
		Length:   resp.Length,
		Width:    resp.Width,
		Price:    resp.Price,
		Currency: string(e.formatter.Currency()),
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Chart written to %s\n", o.HTML)
	return nil
}
