package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/bloom"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/goldmark"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/goquery"
	cmhttp "github.com/Jimmyh-world/Cardano-MCP-sub001/http"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/ingest"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/parse"
	cmslog "github.com/Jimmyh-world/Cardano-MCP-sub001/slog"
	"github.com/Jimmyh-world/Cardano-MCP-sub001/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SourceRegistry cardanomcp.SourceRegistry
	SectionStore   cardanomcp.SectionStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cardano-docs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cardano-docs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CARDANO_MCP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SourceRegistry = sqlite.NewRegistryService(m.DB)
	m.SectionStore = sqlite.NewSectionService(m.DB)
	deps.DB = m.DB
	deps.Sources = m.SourceRegistry
	deps.Sections = m.SectionStore
	deps.Sitemaps = cmhttp.NewSitemapDiscoverer(nil)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	fetcher := cmslog.NewLoggingFetcher(cmhttp.NewFetcher(), logger)
	defer fetcher.Close()
	deps.Fetcher = fetcher

	parserCfg := parse.DefaultConfig()
	deps.Ingestor = &ingest.Ingestor{
		Fetcher: fetcher,
		Parser: &parse.Parser{
			Cleaner:  goquery.NewCleaner(),
			Sections: goquery.NewExtractor(),
			Markdown: goldmark.NewConverter(),
			Config:   parserCfg,
		},
		Store:   m.SectionStore,
		Limiter: ingest.NewHostLimiter(1.0),
		Seen:    bloom.NewSeenFilter(100000, 0.01),
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CARDANO_MCP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cardano-mcp.db"
	}
	dir := filepath.Join(home, ".cardano-mcp")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cardano-mcp.db")
}
