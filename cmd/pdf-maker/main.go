package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/ytget/pdf-maker/internal/config"
	"github.com/ytget/pdf-maker/internal/convert"
	"github.com/ytget/pdf-maker/internal/model"
	"github.com/ytget/pdf-maker/internal/platform"
	"github.com/ytget/pdf-maker/internal/selection"
)

func main() {
	var (
		outputDir  string
		customName string
		optimize   bool
		maxDim     int
		quality    int
		toTop      string
	)
	flag.StringVar(&outputDir, "out", "", "Directory the PDF is written to (default ~/Documents, or the working directory)")
	flag.StringVar(&customName, "name", "", "Output file name without .pdf (default pdf-maker-<timestamp>)")
	flag.BoolVar(&optimize, "optimize", config.DefaultOptimizeSize, "Downscale images larger than -max-dim")
	flag.IntVar(&maxDim, "max-dim", config.DefaultMaxDimension, "Largest image side kept when optimizing")
	flag.IntVar(&quality, "quality", config.DefaultJPEGQuality, "JPEG quality of embedded pages (1-100)")
	flag.StringVar(&toTop, "to-top", "", "Comma separated 1-based positions moved to the top before converting")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE|PATTERN...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api.DisableConfigDir()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if outputDir == "" {
		outputDir = defaultOutputDir()
	}

	if err := run(ctx, flag.Args(), outputDir, customName, optimize, maxDim, quality, toTop); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(exitCode(err))
	}
}

// defaultOutputDir returns ~/Documents when it exists, else the working directory
func defaultOutputDir() string {
	if dir, err := platform.GetHomeDocumentsDir(); err == nil && platform.DirectoryExists(dir) {
		return dir
	}
	return "."
}

// exitCode is 2 when the request was rejected before anything was read, 1 otherwise
func exitCode(err error) int {
	if convert.IsPrecondition(err) {
		return 2
	}
	return 1
}

func run(ctx context.Context, patterns []string, outputDir, customName string, optimize bool, maxDim, quality int, toTop string) error {
	paths, err := platform.ExpandPatterns(patterns)
	if err != nil {
		return err
	}

	store := selection.NewStore()
	if skipped := store.Choose(paths); skipped > 0 {
		log.Printf("Skipped %d unsupported files", skipped)
	}

	if toTop != "" {
		rows, err := parseRows(toTop, store.DisplayLen())
		if err != nil {
			return err
		}
		store.Move(rows, selection.Up, true)
	}

	if outputDir != "" {
		if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	inputs := store.OrderedPaths()
	log.Printf("Converting in order: %s", strings.Join(store.Names(), ", "))

	svc := convert.NewService(maxDim, quality)
	svc.SetUpdateCallback(func(job *model.ConversionJob) {
		log.Printf("Progress: %d%%", job.Percent)
	})

	job, err := svc.Convert(ctx, convert.Request{
		Inputs:        inputs,
		OutputDir:     outputDir,
		UseCustomName: customName != "",
		CustomName:    customName,
		Optimize:      optimize,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("interrupted")
		}
		return err
	}

	log.Printf("Wrote %s (%d inputs, %s)", job.OutputPath, len(job.Inputs), job.Duration())
	return nil
}

// parseRows turns "3,1" into zero-based rows, rejecting positions outside 1..count
func parseRows(list string, count int) ([]int, error) {
	var rows []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", part, err)
		}
		if pos < 1 || pos > count {
			return nil, fmt.Errorf("position %d out of range 1..%d", pos, count)
		}
		rows = append(rows, pos-1)
	}
	return rows, nil
}
