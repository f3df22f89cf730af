package registry

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCorpCodeXML = `<?xml version="1.0" encoding="UTF-8"?>
<result>
    <list>
        <corp_code>00126380</corp_code>
        <corp_name>삼성전자</corp_name>
        <corp_eng_name>SAMSUNG ELECTRONICS CO,.LTD</corp_eng_name>
        <stock_code>005930</stock_code>
        <modify_date>20230110</modify_date>
    </list>
    <list>
        <corp_code> 00164779 </corp_code>
        <corp_name> SK하이닉스 </corp_name>
        <stock_code>000660</stock_code>
    </list>
    <list>
        <corp_code>00401731</corp_code>
        <corp_name>LG전자</corp_name>
        <corp_eng_name>LG Electronics Inc.</corp_eng_name>
        <stock_code>066570</stock_code>
        <modify_date>20230215</modify_date>
    </list>
</result>`

func writeSampleTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CORPCODE.xml")
	if err := os.WriteFile(path, []byte(sampleCorpCodeXML), 0644); err != nil {
		t.Fatalf("write sample table: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	table := Load(writeSampleTable(t))

	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}

	// Fields are trimmed and missing fields default to empty.
	second := table.Entries()[1]
	if second.CorpCode != "00164779" {
		t.Errorf("expected trimmed corp code, got %q", second.CorpCode)
	}
	if second.CorpName != "SK하이닉스" {
		t.Errorf("expected trimmed corp name, got %q", second.CorpName)
	}
	if second.CorpEngName != "" || second.ModifyDate != "" {
		t.Errorf("expected empty defaults for missing fields, got %q / %q",
			second.CorpEngName, second.ModifyDate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	table := Load(filepath.Join(t.TempDir(), "does-not-exist.xml"))
	if table.Len() != 0 {
		t.Errorf("expected empty table for missing file, got %d rows", table.Len())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CORPCODE.xml")
	if err := os.WriteFile(path, []byte("<result><list><corp_code>busted"), 0644); err != nil {
		t.Fatalf("write malformed table: %v", err)
	}

	table := Load(path)
	if table.Len() != 0 {
		t.Errorf("expected empty table for malformed file, got %d rows", table.Len())
	}
}

func TestFindCode(t *testing.T) {
	table := Load(writeSampleTable(t))

	tests := []struct {
		name     string
		wantCode string
		wantOK   bool
	}{
		{"삼성전자", "00126380", true},
		{"SK하이닉스", "00164779", true},
		{"LG전자", "00401731", true},
		{"존재하지않는회사", "", false},
		// Exact match only: no partial or case-insensitive matching.
		{"삼성", "", false},
		{"sk하이닉스", "", false},
	}

	for _, tc := range tests {
		code, ok := table.FindCode(tc.name)
		if ok != tc.wantOK || code != tc.wantCode {
			t.Errorf("FindCode(%q) = (%q, %v), want (%q, %v)",
				tc.name, code, ok, tc.wantCode, tc.wantOK)
		}
	}
}
