package validate

import (
	"fmt"

	"github.com/gruppe-adler/usgs-dem/internal/utils"
)

// InputFile validates that given path names an existing DEM file
func InputFile(inputPath string) error {
	if inputPath == "" {
		return fmt.Errorf("no input file specified")
	}

	if !utils.IsFile(inputPath) {
		return fmt.Errorf("no input file named %q", inputPath)
	}

	return nil
}

// OutputDirectory validates that given path is an existing directory
func OutputDirectory(outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("no output directory specified")
	}

	if !utils.IsDirectory(outputPath) {
		return fmt.Errorf("%s does not exist or is no directory", outputPath)
	}

	return nil
}
