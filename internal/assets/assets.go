// Package assets loads the sprite sets diagrams are composed from.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"sort"
)

//go:embed sprites
var embedded embed.FS

var ErrMissingAsset = errors.New("missing asset")

// Spec names one sprite of a set and the file it is read from.
type Spec struct {
	Name string
	File string
}

// Set is an immutable mapping from element name to decoded image.
type Set struct {
	images map[string]image.Image
}

func (s Set) Get(name string) (image.Image, bool) {
	img, ok := s.images[name]
	return img, ok
}

func (s Set) Has(name string) bool {
	_, ok := s.images[name]
	return ok
}

func (s Set) Len() int {
	return len(s.images)
}

// Names returns the element names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.images))
	for n := range s.images {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Loader reads sprite sets from a file system laid out as
// <category>/<pattern>/<file>.png.
type Loader struct {
	FS fs.FS
}

// Default returns a loader over the sprites compiled into the binary.
func Default() Loader {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(err)
	}
	return Loader{FS: sub}
}

// Dir returns a loader over a sprite directory on disk.
func Dir(root string) (Loader, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return Loader{}, err
	}
	if !fi.IsDir() {
		return Loader{}, fmt.Errorf("assets: %s is not a directory", root)
	}
	return Loader{FS: os.DirFS(root)}, nil
}

// Load decodes every file in specs from dir. The first missing or undecodable
// file fails the whole set.
func (l Loader) Load(dir string, specs []Spec) (Set, error) {
	if l.FS == nil {
		return Set{}, errors.New("assets: loader has no file system")
	}
	set := Set{images: make(map[string]image.Image, len(specs))}
	for _, sp := range specs {
		img, err := l.decode(path.Join(dir, sp.File))
		if err != nil {
			return Set{}, err
		}
		set.images[sp.Name] = img
	}
	return set, nil
}

func (l Loader) decode(name string) (image.Image, error) {
	f, err := l.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, name)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
