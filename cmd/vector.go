package main

import "github.com/spf13/cobra"

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Vector processing operations",
	Long:  "Reproject, rasterize and interpolate vector datasets, and extract shared polygon boundaries.",
}

func init() { rootCmd.AddCommand(vectorCmd) }
