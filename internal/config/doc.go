// Package config loads the tool settings.
//
// Values come from built-in defaults, an optional config file (any format
// Viper understands, inferred from the file extension) and USGSDEM_
// prefixed environment variables, in increasing order of precedence.
// Layout constants of the DEM format are not configurable.
package config
