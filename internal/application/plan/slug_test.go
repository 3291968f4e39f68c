package plan

import "testing"

func TestSlugifyCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "Critiques & Tests", "critiques-et-tests"},
		{"diacritics", "Économie", "economie"},
		{"accents_and_spaces", "Cinéma & Séries", "cinema-et-series"},
		{"apostrophe", "Guides d'achat", "guides-d-achat"},
		{"already_clean", "Esport", "esport"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SlugifyCategory(tc.in); got != tc.want {
				t.Fatalf("SlugifyCategory(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAuthorSlug(t *testing.T) {
	t.Parallel()

	if got := AuthorSlug("Rédaction Otaku Hebdo"); got != "redaction-otaku-hebdo" {
		t.Fatalf("AuthorSlug = %q, want %q", got, "redaction-otaku-hebdo")
	}
	if got := AuthorSlug("Spécialiste Anime & Manga"); got != "specialiste-anime-manga" {
		t.Fatalf("AuthorSlug = %q, want %q", got, "specialiste-anime-manga")
	}
}
