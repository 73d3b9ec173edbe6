package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"goagree/internal/stats"
)

func TestUnknownVennFormatError(t *testing.T) {
	var b bytes.Buffer
	err := WriteVenn("svg", &b, stats.Venn{})
	if err == nil || !strings.Contains(err.Error(), "unknown venn format") {
		t.Fatalf("want 'unknown venn format' error, got: %v", err)
	}
}

func TestVennJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteVenn(VennJSON, &b, stats.Venn{OnlyH: 2, OnlyF: 4, Both: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", b.String(), err)
	}
	if got["only_h"] != 2 || got["only_f"] != 4 || got["both"] != 1 {
		t.Fatalf("bad venn json %v", got)
	}
}

func TestVennTSV(t *testing.T) {
	var b bytes.Buffer
	if err := WriteVenn(VennTSV, &b, stats.Venn{OnlyH: 2, OnlyF: 4, Both: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.String() != "only_h\tonly_f\tboth\n2\t4\t1\n" {
		t.Fatalf("bad venn tsv %q", b.String())
	}
}

func TestVennFormats(t *testing.T) {
	if got := strings.Join(VennFormats(), ","); got != "json,tsv" {
		t.Fatalf("formats = %s", got)
	}
}
