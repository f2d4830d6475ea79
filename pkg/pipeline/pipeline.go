// Package pipeline provides the load → export pipeline for graphexport.
//
// This package ties the graph description reader, the traversal engine and
// the concrete exporters together so that the CLI and library users get the
// same behavior, including artifact caching.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Read and validate a graph description document
//  2. Export: Run the traversal engine once per requested format
//
// Formats are exported concurrently. A run either produces every requested
// artifact or fails as a whole.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(0, 0), nil, logger)
//	root, err := runner.Load(ctx, "city.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, root, pipeline.Options{
//	    Formats: []string{"xml", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xml := result.Artifacts["xml"]
//
// Export a single format without caching:
//
//	data, err := pipeline.Export(ctx, root, "dot", opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphexport/pkg/cache"
	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/export"
)

// Format constants for output formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// DefaultFormat is exported when no format is requested.
const DefaultFormat = FormatXML

// TTLArtifact is how long exported artifacts stay cached.
const TTLArtifact = time.Hour

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatXML:  true,
	FormatJSON: true,
	FormatYAML: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// Options contains all configuration for an export run.
type Options struct {
	// Formats to export, in the order results are reported.
	Formats []string `json:"formats,omitempty"`

	// MaxDepth bounds graph nesting; 0 means unlimited.
	MaxDepth int `json:"max_depth,omitempty"`

	// Detailed adds node descriptions to DOT and SVG output.
	Detailed bool `json:"detailed,omitempty"`

	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID uniquely identifies this run in logs.
	ID string

	// GraphHash is the content hash of the exported graph.
	GraphHash string

	// Artifacts contains exported outputs keyed by format.
	Artifacts map[string][]byte

	// Counts summarizes the exported graph.
	Counts export.Counts

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	ExportTime time.Duration
}

// CacheInfo tracks which formats were served from the cache.
type CacheInfo struct {
	Hits []string // formats served from cache, sorted
	All  bool     // every artifact came from cache
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if err := errors.ValidateFormatName(format); err != nil {
		return err
	}
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and applies defaults.
// Duplicate formats are dropped, keeping the first occurrence.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_depth must not be negative, got %d", o.MaxDepth)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, MaxDepth: o.MaxDepth}
	if o.Detailed && (format == FormatDOT || format == FormatSVG) {
		opts.Format += "+detailed"
	}
	return opts
}

// EngineOptions translates options for the traversal engine.
func (o *Options) EngineOptions() []export.Option {
	if o.MaxDepth > 0 {
		return []export.Option{export.WithMaxDepth(o.MaxDepth)}
	}
	return nil
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
