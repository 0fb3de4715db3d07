package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshuapare/msbkit/msb"
)

var kindNames = map[msb.Kind]string{
	msb.KindText:    "text",
	msb.KindInt32:   "int32",
	msb.KindVector3: "vector3",
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the editable enemy fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFields()
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields() error {
	if jsonOut {
		type field struct {
			Name        string `json:"name"`
			Kind        string `json:"kind"`
			Description string `json:"description"`
		}
		out := make([]field, 0, len(msb.Fields()))
		for _, f := range msb.Fields() {
			out = append(out, field{f.String(), kindNames[f.Kind()], f.Description()})
		}
		return printJSON(out)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, f := range msb.Fields() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f, kindNames[f.Kind()], f.Description())
	}
	return tw.Flush()
}
