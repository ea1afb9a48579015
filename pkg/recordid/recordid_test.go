package recordid_test

import (
	"strings"
	"testing"

	"github.com/provenly/chainledger/pkg/recordid"
)

func TestParse_valid(t *testing.T) {
	tests := []struct {
		raw    string
		prefix string
		hex    string
	}{
		{"EVIDENCE-aaaa1111", "EVIDENCE", "aaaa1111"},
		{"DECISION-7f3a90bc12de", "DECISION", "7f3a90bc12de"},
		{"INTENT-00FF00FF", "INTENT", "00FF00FF"}, // hex is case-insensitive
		{"EXEC_STEP-deadbeefcafe", "EXEC_STEP", "deadbeefcafe"},
		{"A1-12345678", "A1", "12345678"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := recordid.Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.raw, err)
			}
			if id.Prefix != tt.prefix || id.Hex != tt.hex {
				t.Errorf("Parse(%q) = {%q %q}, want {%q %q}", tt.raw, id.Prefix, id.Hex, tt.prefix, tt.hex)
			}
			if id.String() != tt.raw {
				t.Errorf("String() = %q, want %q", id.String(), tt.raw)
			}
		})
	}
}

func TestParse_invalid(t *testing.T) {
	tests := []string{
		"",
		"EVIDENCE",            // no separator
		"EVIDENCE-",           // empty hex
		"EVIDENCE-aaaa111",    // hex too short (7)
		"EVIDENCE-aaaa111g",   // non-hex character
		"evidence-aaaa1111",   // lowercase prefix
		"1BAD-aaaa1111",       // prefix must start with a letter
		"EVIDENCE_aaaa1111",   // wrong separator
		" EVIDENCE-aaaa1111",  // leading whitespace
		"EVIDENCE-aaaa1111 ",  // trailing whitespace
	}
	for _, raw := range tests {
		if _, err := recordid.Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
		if recordid.Valid(raw) {
			t.Errorf("Valid(%q) should be false", raw)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	if !recordid.HasPrefix("EVIDENCE-aaaa1111", "EVIDENCE") {
		t.Error("HasPrefix should accept matching prefix")
	}
	if recordid.HasPrefix("DECISION-aaaa1111", "EVIDENCE") {
		t.Error("HasPrefix should reject mismatched prefix")
	}
	if recordid.HasPrefix("not-an-id", "EVIDENCE") {
		t.Error("HasPrefix should reject malformed ids")
	}
}

func TestNew(t *testing.T) {
	id, err := recordid.New("EVIDENCE")
	if err != nil {
		t.Fatal(err)
	}
	if id.Prefix != "EVIDENCE" {
		t.Errorf("prefix = %q, want EVIDENCE", id.Prefix)
	}
	if len(id.Hex) < recordid.MinHexLen {
		t.Errorf("hex payload too short: %q", id.Hex)
	}
	if !recordid.Valid(id.String()) {
		t.Errorf("minted id %q does not round-trip through Valid", id)
	}

	other, err := recordid.New("EVIDENCE")
	if err != nil {
		t.Fatal(err)
	}
	if other.Hex == id.Hex {
		t.Error("two minted ids should not collide")
	}
}

func TestNew_rejectsBadPrefix(t *testing.T) {
	for _, prefix := range []string{"", "lower", "1BAD", "HAS SPACE", "HAS-DASH"} {
		if _, err := recordid.New(prefix); err == nil {
			t.Errorf("New(%q) should fail", prefix)
		}
	}
}

func TestCanonical_lowercasesHex(t *testing.T) {
	id := recordid.MustParse("INTENT-00FF00FF")
	if got := id.Canonical(); got != "INTENT-00ff00ff" {
		t.Errorf("Canonical() = %q, want %q", got, "INTENT-00ff00ff")
	}
	if !strings.HasPrefix(id.Canonical(), "INTENT-") {
		t.Errorf("Canonical() must preserve the prefix")
	}
}
