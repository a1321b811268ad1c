package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/seamcarve"
	"github.com/esimov/seamcarve/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐
└─┐├┤ ├─┤││││  ├─┤├┬┘└┐┌┘├┤
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘

Content aware image shrinking.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source       = flag.String("in", "", "Source image, directory or - for stdin")
	destination  = flag.String("out", "", "Destination (defaults to carved<W>X<H>.<source> next to the source)")
	sourceWidth  = flag.Int("sw", 0, "Declared source width (0 accepts the image header)")
	sourceHeight = flag.Int("sh", 0, "Declared source height (0 accepts the image header)")
	newWidth     = flag.Int("width", 0, "Target width")
	newHeight    = flag.Int("height", 0, "Target height")
	percentage   = flag.Bool("perc", false, "Reduce image by percentage")
	square       = flag.Bool("square", false, "Reduce image to square dimensions")
	scale        = flag.Bool("scale", false, "Proportional scaling before carving")
	debug        = flag.Bool("debug", false, "Log every removed seam")
	workers      = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*source) == 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a source image with the -in flag!", utils.ErrorMessage))
	}
	if *newWidth <= 0 && *newHeight <= 0 && !*square {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a target width and height for image carving!", utils.ErrorMessage))
	}

	proc := &seamcarve.Processor{
		SourceWidth:  *sourceWidth,
		SourceHeight: *sourceHeight,
		NewWidth:     *newWidth,
		NewHeight:    *newHeight,
		Percentage:   *percentage,
		Square:       *square,
		Scale:        *scale,
		Debug:        *debug,
	}

	op := &seamcarve.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}
	if op.Src == pipeName && op.Dst == "" {
		op.Dst = pipeName
	}

	if err := proc.Execute(op); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("\nError carving the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}
