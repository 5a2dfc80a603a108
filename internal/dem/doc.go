// Package dem decodes USGS Digital Elevation Model files.
//
// A DEM file starts with a 1024 byte header block holding the file name,
// a description and the raster dimensions, followed by one elevation profile
// record per raster column. Each record spans one or more 1024 byte blocks
// of fixed width 6 byte decimal samples.
//
// Only the uniform elevation profile layout is supported.
package dem
