// Package cardanomcp provides the documentation acquisition and
// normalization pipeline behind the Cardano MCP knowledge base. It fetches
// external documentation (web pages, Markdown files), validates and cleans
// the markup, segments it into heading-driven sections, and derives stable
// per-section metadata suitable for downstream embedding and indexing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package cardanomcp
