package main

import "github.com/spf13/cobra"

var rasterCmd = &cobra.Command{
	Use:   "raster",
	Short: "Raster processing operations",
	Long:  "Clip, reproject, resample, snap and window GeoTIFF rasters.",
}

func init() { rootCmd.AddCommand(rasterCmd) }
