package main

import "github.com/spf13/cobra"

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Statistical tests over tabular data",
	Long:  "Chi-square independence, Shapiro-Wilk normality, correlation, covariance and descriptive statistics over CSV, XLSX or SQLite inputs.",
}

func init() { rootCmd.AddCommand(statsCmd) }
