package model

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestCategoryListShapes(t *testing.T) {
	tables := []struct {
		name string
		in   string
		want CategoryList
	}{
		{
			name: "single string",
			in:   `categories: "Technology"`,
			want: CategoryList{{Name: "Technology"}},
		},
		{
			name: "flat list",
			in: `categories:
  - Technology
  - Education`,
			want: CategoryList{{Name: "Technology"}, {Name: "Education"}},
		},
		{
			name: "pair list",
			in: `categories:
  - ["Society & Culture", "Personal Journals"]`,
			want: CategoryList{{Name: "Society & Culture", Sub: "Personal Journals"}},
		},
		{
			name: "mapping list",
			in: `categories:
  - name: "Society & Culture"
    sub: "Personal Journals"
  - name: Education`,
			want: CategoryList{{Name: "Society & Culture", Sub: "Personal Journals"}, {Name: "Education"}},
		},
		{
			name: "mixed list",
			in: `categories:
  - Technology
  - ["Society & Culture", "Personal Journals"]
  - name: Education
    sub: Courses`,
			want: CategoryList{
				{Name: "Technology"},
				{Name: "Society & Culture", Sub: "Personal Journals"},
				{Name: "Education", Sub: "Courses"},
			},
		},
		{
			name: "duplicates preserved in order",
			in: `categories:
  - Technology
  - Technology`,
			want: CategoryList{{Name: "Technology"}, {Name: "Technology"}},
		},
	}
	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			var doc struct {
				Categories CategoryList `yaml:"categories"`
			}
			if err := yaml.Unmarshal([]byte(table.in), &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(doc.Categories, table.want) {
				t.Errorf("got %+v, want %+v", doc.Categories, table.want)
			}
		})
	}
}

func TestCategoryEquivalentShapes(t *testing.T) {
	// "Technology" and ["Technology"] must normalize identically.
	var a, b struct {
		Categories CategoryList `yaml:"categories"`
	}
	if err := yaml.Unmarshal([]byte(`categories: Technology`), &a); err != nil {
		t.Fatal(err)
	}
	if err := yaml.Unmarshal([]byte(`categories: [Technology]`), &b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Categories, b.Categories) {
		t.Errorf("scalar and single-element list differ: %+v vs %+v", a.Categories, b.Categories)
	}
}

func TestCategoryInvalidShapes(t *testing.T) {
	tables := []struct {
		name string
		in   string
	}{
		{"number", `categories: 42`},
		{"empty string", `categories: ""`},
		{"mapping without name", `categories: [{sub: "Personal Journals"}]`},
		{"oversized pair", `categories: [["a", "b", "c"]]`},
	}
	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			var doc struct {
				Categories CategoryList `yaml:"categories"`
			}
			if err := yaml.Unmarshal([]byte(table.in), &doc); err == nil {
				t.Errorf("expected error for %s, got %+v", table.in, doc.Categories)
			}
		})
	}
}

func TestCategoryMarshalRoundTrip(t *testing.T) {
	in := CategoryList{{Name: "Technology"}, {Name: "Society & Culture", Sub: "Personal Journals"}}
	out, err := yaml.Marshal(struct {
		Categories CategoryList `yaml:"categories"`
	}{in})
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Categories CategoryList `yaml:"categories"`
	}
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(doc.Categories, in) {
		t.Errorf("round trip changed categories: %+v -> %+v", in, doc.Categories)
	}
}
