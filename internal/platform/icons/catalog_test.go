package icons

import (
	"strings"
	"testing"
)

func TestCatalogHasUniqueNamedEntries(t *testing.T) {
	defs := Catalog()
	if len(defs) == 0 {
		t.Fatal("expected catalog to include icon definitions")
	}

	seen := make(map[ID]struct{})
	for _, def := range defs {
		if strings.TrimSpace(string(def.ID)) == "" {
			t.Errorf("unexpected blank icon id in catalog")
		}
		if _, ok := seen[def.ID]; ok {
			t.Errorf("duplicate icon id in catalog: %s", def.ID)
		}
		seen[def.ID] = struct{}{}
		if strings.TrimSpace(def.Name) == "" {
			t.Errorf("icon %s missing name", def.ID)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	defs := Catalog()
	defs[0].Name = "mutated"
	if Catalog()[0].Name == "mutated" {
		t.Fatal("expected Catalog to return a copy")
	}
}

func TestKnown(t *testing.T) {
	if !Known(Stethoscope) {
		t.Fatal("expected stethoscope to be known")
	}
	if Known(ID("unicorn")) {
		t.Fatal("expected unicorn to be unknown")
	}
}

func TestCatalogMarkdownIncludesIconIds(t *testing.T) {
	markdown := CatalogMarkdown()
	if strings.TrimSpace(markdown) == "" {
		t.Fatal("expected catalog markdown to be non-empty")
	}

	for _, def := range Catalog() {
		if !strings.Contains(markdown, "| "+string(def.ID)+" |") {
			t.Errorf("catalog markdown missing icon id %s", def.ID)
		}
	}
}

func TestLucideMappingsAreCataloged(t *testing.T) {
	for id, name := range lucideIconNames {
		if !Known(id) {
			t.Errorf("lucide mapping for %s exists but icon id is missing from catalog", name)
		}
	}
}

func TestCatalogIconsHaveLucideMappings(t *testing.T) {
	for _, def := range Catalog() {
		if _, ok := LucideName(def.ID); !ok {
			t.Errorf("catalog icon %s does not have a Lucide mapping", def.ID)
		}
	}
}
