package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/dto"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/entity"
)

// EstimateOptions are the flags of the estimate command. Numbers are kept
// as text so blank or malformed values coerce to 0 like the form does.
type EstimateOptions struct {
	*GlobalOptions
	OutputOptions

	Length    string
	Width     string
	Thickness string
	Price     string
	Project   string

	thicknessSet bool
}

// DefaultEstimateOptions returns the defaults of the estimate command.
func DefaultEstimateOptions(global *GlobalOptions) *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: global,
		Project:       entity.UntitledProject,
	}
}

// NewCmdEstimate builds the estimate command.
func NewCmdEstimate(global *GlobalOptions) *cobra.Command {
	o := DefaultEstimateOptions(global)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate tonnage and cost for one rectangular area",
		Example: `  asphalt estimate --length 50 --width 20 --thickness 3 --price 80
  asphalt estimate --length 50 --width 20 --price 80 --xlsx quote.xlsx --project Smith`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd)
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

// Bind registers the estimate flags.
func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.OutputOptions.Bind(fs)

	fs.StringVarP(&o.Length, "length", "l", o.Length, "Length in feet")
	fs.StringVarP(&o.Width, "width", "w", o.Width, "Width in feet")
	fs.StringVarP(&o.Thickness, "thickness", "t", o.Thickness, "Thickness in inches (default from config)")
	fs.StringVarP(&o.Price, "price", "p", o.Price, "Price per ton; cost is omitted when 0")
	fs.StringVar(&o.Project, "project", o.Project, "Project name on the exported quote")
}

// Complete records which optional flags were given.
func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	o.thicknessSet = cmd.Flags().Changed("thickness")
	return nil
}

// Validate checks the flag combination.
func (o *EstimateOptions) Validate(args []string) error {
	return o.OutputOptions.Validate()
}

// Request converts the flags to an estimate request.
func (o *EstimateOptions) Request() dto.EstimateRequest {
	req := dto.EstimateRequest{
		Length: dto.Number(o.Length),
		Width:  dto.Number(o.Width),
		Price:  dto.Number(o.Price),
	}
	if o.thicknessSet {
		t := dto.Number(o.Thickness)
		req.Thickness = &t
	}
	return req
}

// Run prints the estimate and optionally exports it.
func (o *EstimateOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	e, err := o.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	req := o.Request()
	resp := e.service.Estimate(ctx, req)
	resp.Display = e.formatter.Display(resp.Result)

	out := cmd.OutOrStdout()
	if o.JSON {
		if err := writeJSON(out, resp); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, e.formatter.Text(resp.Result))
		if resp.Result.Tons > 0 {
			fmt.Fprint(out, e.formatter.Recommendation(resp.Recommendation))
		}
	}

	if o.XLSX == "" {
		return nil
	}
	q, err := e.service.Quote(ctx, o.Project, req)
	if err != nil {
		return err
	}
	return writeQuote(cmd, o.XLSX, q)
}
