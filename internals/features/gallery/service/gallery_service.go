package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrBadImageName  = errors.New("invalid image name")
)

var imageName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*\.(?i:jpe?g|png|webp)$`)

// DefaultCaptions are the alt texts of the images the site ships with; they also fix display order.
var DefaultCaptions = []Caption{
	{"hero-community.jpg", "Community gathering and unity"},
	{"education-program.jpg", "Children in classroom learning"},
	{"women-empowerment.jpg", "Women empowerment program"},
	{"health-outreach.jpg", "Health outreach and medical care"},
	{"environment-program.jpg", "Environmental conservation activities"},
}

type Caption struct {
	File string
	Alt  string
}

type Image struct {
	Name    string    `json:"name"`
	Alt     string    `json:"alt"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Gallery serves images from a flat directory. Sub-directories and dotfiles are ignored.
type Gallery struct {
	Dir      string
	Captions []Caption
}

func NewGallery(dir string) *Gallery {
	return &Gallery{Dir: dir, Captions: DefaultCaptions}
}

// List returns captioned images first (caption order), then the rest by name.
func (g *Gallery) List() ([]Image, error) {
	entries, err := os.ReadDir(g.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return []Image{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}

	rank := make(map[string]int, len(g.Captions))
	alt := make(map[string]string, len(g.Captions))
	for i, c := range g.Captions {
		rank[c.File] = i
		alt[c.File] = c.Alt
	}

	out := make([]Image, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !imageName.MatchString(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		a, ok := alt[e.Name()]
		if !ok {
			a = altFromName(e.Name())
		}
		out = append(out, Image{Name: e.Name(), Alt: a, Size: info.Size(), ModTime: info.ModTime()})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i].Name]
		rj, jok := rank[out[j].Name]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Path resolves name inside Dir, refusing anything that is not a plain image file name.
func (g *Gallery) Path(name string) (string, os.FileInfo, error) {
	if !imageName.MatchString(name) || filepath.Base(name) != name || strings.Contains(name, "..") {
		return "", nil, ErrBadImageName
	}
	p := filepath.Join(g.Dir, name)
	info, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) || (err == nil && info.IsDir()) {
		return "", nil, ErrImageNotFound
	}
	if err != nil {
		return "", nil, err
	}
	return p, info, nil
}

// "women-empowerment.jpg" -> "Women empowerment"
func altFromName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.Join(strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' || r == '.' }), " ")
	if base == "" {
		return name
	}
	return strings.ToUpper(base[:1]) + base[1:]
}
