// Package content holds the studio's static tables, embedded as TOML.
package content

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
)

//go:embed data.toml
var embedded []byte

// Studio is the about-page copy.
type Studio struct {
	Name       string   `toml:"name"`
	Tagline    string   `toml:"tagline"`
	Intro      []string `toml:"intro"`
	Philosophy string   `toml:"philosophy"`
}

// Project is one portfolio entry.
type Project struct {
	ID            string   `toml:"id"`
	Slug          string   `toml:"slug"`
	Title         string   `toml:"title"`
	Category      string   `toml:"category"`
	Location      string   `toml:"location"`
	Year          string   `toml:"year"`
	Collaborators string   `toml:"collaborators"`
	Description   string   `toml:"description"`
	Images        []string `toml:"images"`
}

// NewsArticle has a markdown body.
type NewsArticle struct {
	ID      string `toml:"id"`
	Slug    string `toml:"slug"`
	Title   string `toml:"title"`
	Date    string `toml:"date"`
	Excerpt string `toml:"excerpt"`
	Body    string `toml:"body"`
}

type Founder struct {
	Name string `toml:"name"`
	Role string `toml:"role"`
	Bio  string `toml:"bio"`
}

type AwardLogo struct {
	Name  string `toml:"name"`
	Short string `toml:"short"`
}

type AwardCase struct {
	ID          string `toml:"id"`
	Slug        string `toml:"slug"`
	Title       string `toml:"title"`
	Category    string `toml:"category"`
	Year        string `toml:"year"`
	Description string `toml:"description"`
}

// ContactCard is a top-left anchored contact window.
type ContactCard struct {
	ID                 string   `toml:"id"`
	Title              string   `toml:"title"`
	Lines              []string `toml:"lines"`
	Left               int      `toml:"left"`
	Top                int      `toml:"top"`
	CloseNavigatesHome bool     `toml:"close_navigates_home"`
}

// DynamiteItem is a centered media window. X/Y is the rest offset from center.
type DynamiteItem struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Subtitle    string `toml:"subtitle"`
	Description string `toml:"description"`
	Media       string `toml:"media"` // image or video
	Src         string `toml:"src"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	X           int    `toml:"x"`
	Y           int    `toml:"y"`
}

// Library is every table.
type Library struct {
	Studio     Studio         `toml:"studio"`
	Projects   []Project      `toml:"projects"`
	News       []NewsArticle  `toml:"news"`
	Founders   []Founder      `toml:"founders"`
	AwardLogos []AwardLogo    `toml:"award_logos"`
	Awards     []AwardCase    `toml:"awards"`
	Contact    []ContactCard  `toml:"contact"`
	Dynamite   []DynamiteItem `toml:"dynamite"`
}

// Load decodes the embedded tables.
func Load() (*Library, error) {
	return Parse(embedded)
}

// Parse decodes and validates content tables.
func Parse(data []byte) (*Library, error) {
	var lib Library
	md, err := toml.Decode(string(data), &lib)
	if err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decoding content: unknown key %s", undecoded[0])
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (l *Library) validate() error {
	check := func(table string, ids []string) error {
		seen := make(map[string]bool, len(ids))
		for i, id := range ids {
			if id == "" {
				return fmt.Errorf("content %s[%d]: missing id", table, i)
			}
			if seen[id] {
				return fmt.Errorf("content %s: duplicate id %q", table, id)
			}
			seen[id] = true
		}
		return nil
	}
	tables := []struct {
		name string
		ids  []string
	}{
		{"projects", collect(l.Projects, func(p Project) string { return p.Slug })},
		{"news", collect(l.News, func(n NewsArticle) string { return n.Slug })},
		{"awards", collect(l.Awards, func(a AwardCase) string { return a.Slug })},
		{"contact", collect(l.Contact, func(c ContactCard) string { return c.ID })},
		{"dynamite", collect(l.Dynamite, func(d DynamiteItem) string { return d.ID })},
	}
	for _, t := range tables {
		if err := check(t.name, t.ids); err != nil {
			return err
		}
	}
	for _, d := range l.Dynamite {
		if d.Media != "image" && d.Media != "video" {
			return fmt.Errorf("content dynamite %q: unknown media %q", d.ID, d.Media)
		}
	}
	return nil
}

func collect[T any](items []T, key func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = key(it)
	}
	return out
}

// Project returns the project with slug.
func (l *Library) Project(slug string) (Project, bool) {
	i := slices.IndexFunc(l.Projects, func(p Project) bool { return p.Slug == slug })
	if i < 0 {
		return Project{}, false
	}
	return l.Projects[i], true
}

// Article returns the news article with slug.
func (l *Library) Article(slug string) (NewsArticle, bool) {
	i := slices.IndexFunc(l.News, func(n NewsArticle) bool { return n.Slug == slug })
	if i < 0 {
		return NewsArticle{}, false
	}
	return l.News[i], true
}

// Award returns the award case with slug.
func (l *Library) Award(slug string) (AwardCase, bool) {
	i := slices.IndexFunc(l.Awards, func(a AwardCase) bool { return a.Slug == slug })
	if i < 0 {
		return AwardCase{}, false
	}
	return l.Awards[i], true
}
