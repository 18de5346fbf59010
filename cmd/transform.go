package main

import "github.com/spf13/cobra"

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Tabular data transformations",
	Long:  "One-hot encoding and logratio transforms over tabular attributes.",
}

func init() { rootCmd.AddCommand(transformCmd) }
