package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

var spanishUS = language.MustParse("es-US")

func TestDefaultLoadsSiteLocales(t *testing.T) {
	tags := Default().Tags()
	if len(tags) != 2 || tags[0] != BaseTag || tags[1] != spanishUS {
		t.Fatalf("tags = %v", tags)
	}
}

func TestEveryLocaleTranslatesBaseKeys(t *testing.T) {
	bundle := Default()
	for _, tag := range bundle.Tags() {
		if missing := bundle.Missing(tag); len(missing) > 0 {
			t.Errorf("locale %s missing keys: %v", tag, missing)
		}
	}
}

func TestPrinterResolvesRegionalAndBaseTags(t *testing.T) {
	bundle := Default()
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{tag: spanishUS, want: "Inicio"},
		{tag: language.Spanish, want: "Inicio"},
		{tag: BaseTag, want: "Home"},
		{tag: language.English, want: "Home"},
	}
	for _, tt := range tests {
		if got := bundle.Printer(tt.tag).Sprintf("core.nav.home"); got != tt.want {
			t.Errorf("%s printer = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestLookupFallsBackToBase(t *testing.T) {
	value, ok := Default().Lookup(language.French, "core.nav.home")
	if !ok || value != "Home" {
		t.Fatalf("Lookup = %q, %v", value, ok)
	}
	if _, ok := Default().Lookup(BaseTag, "core.nope"); ok {
		t.Fatal("expected unknown key to miss")
	}
}

func TestLoadRejectsMalformedFiles(t *testing.T) {
	valid := "locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"core.ok\": \"ok\"\n"
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "empty",
			files: fstest.MapFS{},
			want:  "no locale files",
		},
		{
			name: "key outside namespace",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte(valid)},
				"locales/en-US/web.yaml":  {Data: []byte("locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"core.bad\": \"x\"\n")},
			},
			want: "must start with",
		},
		{
			name: "locale mismatch",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: \"es-US\"\nnamespace: \"core\"\nmessages:\n  \"core.ok\": \"ok\"\n")},
			},
			want: "does not match directory",
		},
		{
			name: "namespace mismatch",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"web.ok\": \"ok\"\n")},
			},
			want: "does not match file name",
		},
		{
			name: "missing base",
			files: fstest.MapFS{
				"locales/es-US/core.yaml": {Data: []byte("locale: \"es-US\"\nnamespace: \"core\"\nmessages:\n  \"core.ok\": \"si\"\n")},
			},
			want: "base locale",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.files)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadedBundlesAreIsolated(t *testing.T) {
	bundle, err := Load(fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"core.nav.home\": \"Start\"\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := bundle.Printer(BaseTag).Sprintf("core.nav.home"); got != "Start" {
		t.Fatalf("custom bundle = %q", got)
	}
	if got := Default().Printer(BaseTag).Sprintf("core.nav.home"); got != "Home" {
		t.Fatalf("default bundle = %q", got)
	}
}
