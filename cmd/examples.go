package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zhubert/formplay/internal/examples"
)

var examplePart string

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the compiled-in seed examples",
	Long: `Lists the schema / UI schema pairs formplay can start from.
Start the playground on one with 'formplay --example <name>'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listExamples(cmd.OutOrStdout())
	},
}

var examplesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an example's schema and UI schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showExample(cmd.OutOrStdout(), args[0], examplePart)
	},
}

func init() {
	examplesShowCmd.Flags().StringVar(&examplePart, "part", "", "Print only one document: schema or uischema")
	examplesCmd.AddCommand(examplesShowCmd)
	rootCmd.AddCommand(examplesCmd)
}

func listExamples(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, ex := range examples.All() {
		marker := " "
		if ex.Name == examples.Default {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\n", marker, ex.Name, ex.Description)
	}
	return tw.Flush()
}

func showExample(w io.Writer, name, part string) error {
	ex, err := examples.Get(name)
	if err != nil {
		return err
	}

	switch part {
	case "":
		fmt.Fprintf(w, "# schema\n%s\n# uischema\n%s\n", ex.Schema, ex.UISchema)
	case "schema":
		fmt.Fprintln(w, ex.Schema)
	case "uischema":
		fmt.Fprintln(w, ex.UISchema)
	default:
		return fmt.Errorf("unknown part %q (want schema or uischema)", part)
	}
	return nil
}
