package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("compiled-in default must validate: %v", err)
	}
}

func TestValidate_MissingTables(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Taxonomy)
	}{
		{"no strong actions", func(tx *Taxonomy) { tx.StrongOrderActions = nil }},
		{"no possessive marker", func(tx *Taxonomy) { tx.PossessiveMarker = "" }},
		{"no escalation", func(tx *Taxonomy) { tx.Escalation = nil }},
		{"no shipping topic", func(tx *Taxonomy) { delete(tx.FAQTopics, TopicShipping) }},
		{"no refund topic", func(tx *Taxonomy) { tx.FAQTopics[TopicRefund] = nil }},
		{"no policy topic", func(tx *Taxonomy) { delete(tx.FAQTopics, TopicPolicy) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tax := Default()
			tc.mutate(&tax)
			if err := tax.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	orig := Default()

	data, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded.StrongOrderActions) != len(orig.StrongOrderActions) {
		t.Errorf("strong actions: got %d, want %d",
			len(loaded.StrongOrderActions), len(orig.StrongOrderActions))
	}
	if loaded.PossessiveMarker != orig.PossessiveMarker {
		t.Errorf("possessive marker: got %q, want %q",
			loaded.PossessiveMarker, orig.PossessiveMarker)
	}
	if len(loaded.FAQTopics) != len(orig.FAQTopics) {
		t.Errorf("faq topics: got %d, want %d", len(loaded.FAQTopics), len(orig.FAQTopics))
	}
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	override := `
strong_order_actions: ["track", "where is"]
possessive_marker: "my"
escalation: ["agent"]
faq_topics:
  shipping: ["shipping"]
  refund: ["refund"]
  return: ["return"]
  policy: ["policy"]
`
	if err := os.WriteFile(path, []byte(override), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tax.StrongOrderActions) != 2 {
		t.Errorf("strong actions: got %d, want 2", len(tax.StrongOrderActions))
	}
}

func TestLoad_InvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	// Missing the shipping topic the cascade depends on.
	override := `
strong_order_actions: ["track"]
possessive_marker: "my"
escalation: ["agent"]
faq_topics:
  refund: ["refund"]
  return: ["return"]
  policy: ["policy"]
`
	if err := os.WriteFile(path, []byte(override), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for incomplete override")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
