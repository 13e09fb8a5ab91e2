package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/form"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/sections"
)

// SectionsOptions are the flags of the sections command.
type SectionsOptions struct {
	*GlobalOptions
	OutputOptions

	File    string
	Price   string
	Project string

	priceSet bool
}

// NewCmdSections builds the sections command.
func NewCmdSections(global *GlobalOptions) *cobra.Command {
	o := &SectionsOptions{GlobalOptions: global}
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Estimate an irregular area described as rectangles in a YAML or XLSX file",
		Example: `  asphalt sections --file lot.yaml --price 80
  asphalt sections --file lot.xlsx --xlsx quote.xlsx`,
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

// Bind registers the sections flags.
func (o *SectionsOptions) Bind(fs *pflag.FlagSet) {
	o.OutputOptions.Bind(fs)

	fs.StringVarP(&o.File, "file", "f", o.File, "Sections file (.yaml, .yml or .xlsx)")
	fs.StringVarP(&o.Price, "price", "p", o.Price, "Price per ton; overrides the file's price")
	fs.StringVar(&o.Project, "project", o.Project, "Project name; defaults to the file's")
}

// Complete records which optional flags were given.
func (o *SectionsOptions) Complete(cmd *cobra.Command, args []string) error {
	o.priceSet = cmd.Flags().Changed("price")
	return nil
}

// Validate checks the flag combination.
func (o *SectionsOptions) Validate(args []string) error {
	if o.File == "" {
		return errors.New("--file is required")
	}
	return o.OutputOptions.Validate()
}

// Run prints the per-section table and the total.
func (o *SectionsOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	e, err := o.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	file, err := sections.Load(o.File, e.cfg.Estimator.DefaultThickness)
	if err != nil {
		return err
	}

	price := file.Price
	if o.priceSet {
		price = form.ParseNumber(o.Price)
	}
	project := file.Project
	if o.Project != "" {
		project = o.Project
	}

	resp := e.service.EstimateSections(ctx, file.Sections, price)
	resp.Display = e.formatter.Display(resp.Total)

	out := cmd.OutOrStdout()
	if o.JSON {
		if err := writeJSON(out, resp); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "%s\n\n", project)
		fmt.Fprint(out, e.formatter.SectionsTable(resp.Sections, resp.Total))
		fmt.Fprintln(out)
		fmt.Fprint(out, e.formatter.Text(resp.Total))
		if resp.Total.Tons > 0 {
			fmt.Fprint(out, e.formatter.Recommendation(resp.Recommendation))
		}
	}

	if o.XLSX == "" {
		return nil
	}
	q, err := e.service.SectionsQuote(ctx, project, file.Sections, price)
	if err != nil {
		return err
	}
	return writeQuote(cmd, o.XLSX, q)
}
