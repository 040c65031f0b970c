package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rps-arena/internal/sims/rps"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in variants",
	Long:  `Shows every variant preset and the keys accepted by --set.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := rps.Variants()

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, v := range variants {
		if len(v.Name) > maxNameLen {
			maxNameLen = len(v.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxNameLen, v.Name, v.Summary)
	}

	fmt.Println()
	fmt.Println("Override keys for --set:")
	for _, k := range rps.OverrideKeys() {
		fmt.Printf("  %s\n", k)
	}
	fmt.Println("  texture_rock, texture_paper, texture_scissors")
}
