package mock

import cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"

var _ cardanomcp.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of cardanomcp.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn func(html string, cfg cardanomcp.ExtractConfig) ([]cardanomcp.ParsedSection, error)
}

func (e *SectionExtractor) ExtractSections(html string, cfg cardanomcp.ExtractConfig) ([]cardanomcp.ParsedSection, error) {
	return e.ExtractSectionsFn(html, cfg)
}

var _ cardanomcp.MainContentExtractor = (*MainContentExtractor)(nil)

// MainContentExtractor is a mock implementation of cardanomcp.MainContentExtractor.
type MainContentExtractor struct {
	ExtractMainContentFn func(html string) (string, error)
}

func (e *MainContentExtractor) ExtractMainContent(html string) (string, error) {
	return e.ExtractMainContentFn(html)
}
