// Package registry loads the DART corp-code reference table and resolves
// company names to corp codes.
//
// The table is the CORPCODE.xml file distributed by OpenDART: a single
// document with one <list> element per company. It is reference data,
// loaded once per call site and queried by exact name.
package registry

import (
	"encoding/xml"
	"log"
	"os"
	"strings"
)

// Entry is one row of the corp-code table.
type Entry struct {
	CorpCode    string
	CorpName    string
	CorpEngName string
	StockCode   string
	ModifyDate  string
}

// Table is an immutable, in-memory corp-code table.
type Table struct {
	entries []Entry
}

// corpCodeDoc mirrors the fixed CORPCODE.xml schema.
type corpCodeDoc struct {
	List []struct {
		CorpCode    string `xml:"corp_code"`
		CorpName    string `xml:"corp_name"`
		CorpEngName string `xml:"corp_eng_name"`
		StockCode   string `xml:"stock_code"`
		ModifyDate  string `xml:"modify_date"`
	} `xml:"list"`
}

// Load parses the corp-code table at path.
//
// Load fails soft: a missing or malformed file is logged and yields an
// empty table, never an error. Callers that need to distinguish "no
// such company" from "no table" can check Len.
func Load(path string) Table {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("registry: cannot read corp-code file %s: %v", path, err)
		return Table{}
	}

	var doc corpCodeDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.Printf("registry: cannot parse corp-code file %s: %v", path, err)
		return Table{}
	}

	entries := make([]Entry, 0, len(doc.List))
	for _, row := range doc.List {
		entries = append(entries, Entry{
			CorpCode:    strings.TrimSpace(row.CorpCode),
			CorpName:    strings.TrimSpace(row.CorpName),
			CorpEngName: strings.TrimSpace(row.CorpEngName),
			StockCode:   strings.TrimSpace(row.StockCode),
			ModifyDate:  strings.TrimSpace(row.ModifyDate),
		})
	}

	return Table{entries: entries}
}

// FindCode returns the corp code for an exact, case-sensitive company
// name match. The first matching row wins.
func (t Table) FindCode(name string) (string, bool) {
	for _, e := range t.entries {
		if e.CorpName == name {
			return e.CorpCode, true
		}
	}
	return "", false
}

// Entries returns the loaded rows.
func (t Table) Entries() []Entry {
	return t.entries
}

// Len returns the number of loaded rows.
func (t Table) Len() int {
	return len(t.entries)
}
