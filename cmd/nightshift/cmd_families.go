package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yairfalse/nightshift/scheduler"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the resource families in processing order",
	RunE:  runFamilies,
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}

func runFamilies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tLOOKUP\tSTOP\tSTART\tHIERARCHY")
	for _, d := range scheduler.Descriptors() {
		lookup := d.ResourceType
		if lookup == "" {
			lookup = "tag filter"
		}
		hierarchy := "-"
		if d.Hierarchy != nil {
			hierarchy = "members"
		} else if d.SkipGroupMembers {
			hierarchy = "skip group members"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Family, lookup, d.Verbs.Stop, d.Verbs.Start, hierarchy)
	}
	return w.Flush()
}
