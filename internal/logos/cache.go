package logos

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/youruser/imagegen/internal/textlayout"
)

// Cache holds one bitmap per logo and placement size. It is safe for
// concurrent use; bitmaps are never modified after Load.
type Cache struct {
	fonts *textlayout.FontManager
	sizes []int

	mu     sync.RWMutex
	ready  bool
	images map[Name]map[int]image.Image
}

// NewCache prepares a cache that rasterizes every logo at each of sizes.
func NewCache(fonts *textlayout.FontManager, sizes ...int) *Cache {
	s := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(s)))
	return &Cache{fonts: fonts, sizes: s}
}

func (c *Cache) Sizes() []int {
	return append([]int(nil), c.sizes...)
}

// Load rasterizes all logos concurrently. Calling it again after a
// successful load does nothing.
func (c *Cache) Load(ctx context.Context) error {
	if c.Ready() {
		return nil
	}
	if len(c.sizes) == 0 {
		return errors.New("logo cache has no sizes")
	}

	type result struct {
		name Name
		size int
		img  image.Image
		err  error
	}

	var wg sync.WaitGroup
	results := make(chan result, len(definitions)*len(c.sizes))
	for _, name := range Names() {
		def := definitions[name]
		for _, size := range c.sizes {
			wg.Add(1)
			go func(name Name, size int) {
				defer wg.Done()
				if err := ctx.Err(); err != nil {
					results <- result{name: name, size: size, err: err}
					return
				}
				img, err := rasterize(def, size, c.fonts)
				results <- result{name: name, size: size, img: img, err: err}
			}(name, size)
		}
	}
	wg.Wait()
	close(results)

	images := make(map[Name]map[int]image.Image, len(definitions))
	for r := range results {
		if r.err != nil {
			return fmt.Errorf("rasterize %s@%d: %w", r.name, r.size, r.err)
		}
		if images[r.name] == nil {
			images[r.name] = make(map[int]image.Image, len(c.sizes))
		}
		images[r.name][r.size] = r.img
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		c.images = images
		c.ready = true
	}
	return nil
}

func (c *Cache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Logo returns the bitmap for name at size×size. Sizes that were not
// rasterized up front are resampled from the largest bitmap.
func (c *Cache) Logo(name Name, size int) (image.Image, error) {
	if _, ok := definitions[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogo, name)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ready {
		return nil, ErrNotReady
	}
	if img, ok := c.images[name][size]; ok {
		return img, nil
	}
	return imaging.Resize(c.images[name][c.sizes[0]], size, size, imaging.Lanczos), nil
}
