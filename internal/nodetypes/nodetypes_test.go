package nodetypes

import (
	"os"
	"testing"
)

func loadGrammarSchema(t *testing.T) *Schema {
	t.Helper()
	data, err := os.ReadFile("../../src/node-types.json")
	if err != nil {
		t.Fatal(err)
	}
	schema, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	return schema
}

func TestLoadGrammarSchema(t *testing.T) {
	schema := loadGrammarSchema(t)

	if schema.Len() == 0 {
		t.Fatal("expected non-empty schema")
	}

	root, ok := schema.Root()
	if !ok {
		t.Fatal("schema has no root node")
	}
	if root.Type != "program" {
		t.Errorf("expected root node program, got %q", root.Type)
	}

	for _, kind := range []string{
		"simple_command", "pipeline", "proc_definition", "func_definition",
		"var_declaration", "variable_expansion", "heredoc_body", "regex_content",
	} {
		if !schema.HasNamedKind(kind) {
			t.Errorf("expected named kind %q in schema", kind)
		}
	}

	if schema.HasNamedKind("no_such_node") {
		t.Error("unexpected kind no_such_node")
	}
	// Anonymous tokens are declared but not named.
	if schema.HasNamedKind("setvar") {
		t.Error("setvar keyword token should not count as a named kind")
	}
}

func TestSupertypes(t *testing.T) {
	schema := loadGrammarSchema(t)

	supertypes := schema.Supertypes()
	if len(supertypes) != 2 {
		t.Fatalf("expected 2 supertypes, got %d", len(supertypes))
	}
	if supertypes[0].Type != "_expression" || supertypes[1].Type != "_statement" {
		t.Errorf("unexpected supertypes: %q, %q", supertypes[0].Type, supertypes[1].Type)
	}
	if !supertypes[0].IsSupertype() {
		t.Error("IsSupertype should hold for a subtyped entry")
	}
}

func TestFields(t *testing.T) {
	schema := loadGrammarSchema(t)

	n, ok := schema.Lookup("proc_definition")
	if !ok {
		t.Fatal("proc_definition missing")
	}
	name, ok := n.Fields["name"]
	if !ok {
		t.Fatal("proc_definition has no name field")
	}
	if !name.Required || name.Multiple {
		t.Errorf("name field should be required and single, got %+v", name)
	}
	if params := n.Fields["parameters"]; params.Required {
		t.Error("parameters field should be optional")
	}
}

func TestValidateGrammarSchema(t *testing.T) {
	schema := loadGrammarSchema(t)

	if issues := schema.Validate(); len(issues) != 0 {
		t.Fatalf("schema should be self-consistent, got issues: %v", issues)
	}
}

func TestValidateDanglingReference(t *testing.T) {
	schema, err := Load([]byte(`[
		{"type": "program", "named": true, "root": true,
		 "children": {"multiple": true, "required": false,
		              "types": [{"type": "ghost", "named": true}]}}
	]`))
	if err != nil {
		t.Fatal(err)
	}

	issues := schema.Validate()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	_, err := Load([]byte(`[
		{"type": "word", "named": true},
		{"type": "word", "named": true}
	]`))
	if err == nil {
		t.Fatal("expected duplicate kind error")
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	if _, err := Load([]byte(`[]`)); err == nil {
		t.Fatal("expected error for empty schema")
	}
}
