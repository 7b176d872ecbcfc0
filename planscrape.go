// Package planscrape provides a CLI-based scraper for university course plan
// tables. It fetches catalog pages over HTTP, locates the relevant table body
// in the parsed markup, extracts its text content, and persists the result as
// plain text files or a SQLite archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/).
package planscrape
