package pagination_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"pagequery/internal/common/pagination"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    pagination.Strategy
		wantErr bool
	}{
		{name: "empty defaults to two-call", input: "", want: pagination.TwoCall},
		{name: "two-call", input: "two-call", want: pagination.TwoCall},
		{name: "single-pass", input: "single-pass", want: pagination.SinglePass},
		{name: "case and space insensitive", input: "  Single-Pass ", want: pagination.SinglePass},
		{name: "unknown", input: "cursor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pagination.ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrategy_String(t *testing.T) {
	t.Parallel()

	if got := pagination.TwoCall.String(); got != "two-call" {
		t.Errorf("TwoCall.String() = %q", got)
	}
	if got := pagination.SinglePass.String(); got != "single-pass" {
		t.Errorf("SinglePass.String() = %q", got)
	}
	if got := pagination.Strategy(9).String(); got != "strategy(9)" {
		t.Errorf("Strategy(9).String() = %q", got)
	}
}

func TestStrategy_TextEncoding(t *testing.T) {
	t.Parallel()

	var doc struct {
		Strategy pagination.Strategy `yaml:"strategy" json:"strategy"`
	}
	if err := yaml.Unmarshal([]byte("strategy: single-pass\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if doc.Strategy != pagination.SinglePass {
		t.Errorf("yaml strategy = %v, want single-pass", doc.Strategy)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(out) != `{"strategy":"single-pass"}` {
		t.Errorf("json = %s", out)
	}

	if err := yaml.Unmarshal([]byte("strategy: bogus\n"), &doc); err == nil {
		t.Error("yaml.Unmarshal() with unknown strategy should fail")
	}
}
