package main

import (
	"context"
	"io"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/ingest"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Sources  cardanomcp.SourceRegistry
	Sections cardanomcp.SectionStore
	Sitemaps cardanomcp.SitemapDiscoverer
	Fetcher  cardanomcp.Fetcher
	Ingestor *ingest.Ingestor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add      AddCmd      `cmd:"" help:"Register a documentation source and ingest it"`
	List     ListCmd     `cmd:"" help:"List all registered sources"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a source and its indexed sections"`
	Sections SectionsCmd `cmd:"" help:"List indexed sections for a source"`
	Ingest   IngestCmd   `cmd:"" help:"Re-ingest registered sources"`
	Fetch    FetchCmd    `cmd:"" help:"Fetch a URL and print the raw result"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	ID       string `arg:"" help:"Source ID"`
	Location string `arg:"" help:"Documentation URL or path"`

	Type        string   `default:"web" enum:"web,github,local" help:"Source type (web, github, local)"`
	Version     string   `help:"Documentation version label"`
	Preview     bool     `short:"p" help:"Show discovered URLs without registering"`
	Force       bool     `short:"f" help:"Delete existing source first"`
	Discover    bool     `short:"d" help:"Expand a web source into its sitemap pages"`
	Filter      []string `short:"F" name:"filter" help:"Filter discovered URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type string `help:"Filter by source type (web, github, local)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Source ID"`
	Force bool   `help:"Confirm deletion"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	ID   string `arg:"" help:"Source ID"`
	Full bool   `help:"Show full section content"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	ID          string `arg:"" optional:"" help:"Source ID (all sources when omitted)"`
	Concurrency int    `short:"c" default:"5" help:"Concurrent fetch limit"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL  string `arg:"" help:"URL to fetch"`
	Text bool   `help:"Print extracted text instead of raw content"`
	Main bool   `help:"Print the main content region only"`
}
