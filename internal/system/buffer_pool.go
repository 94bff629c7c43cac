package system

import (
	"image"
	"sync"
)

// FramePool переиспользует кадровые буферы *image.RGBA одного размера,
// чтобы анимация на 60 FPS не нагружала GC новым буфером на каждый тик.
type FramePool struct {
	pools map[image.Point]*sync.Pool
	mu    sync.RWMutex
}

var frames = NewFramePool()

func NewFramePool() *FramePool {
	return &FramePool{pools: make(map[image.Point]*sync.Pool)}
}

// GetFrame returns a fully transparent w x h buffer from the shared pool.
func GetFrame(w, h int) *image.RGBA {
	return frames.Get(w, h)
}

// PutFrame hands a buffer back to the shared pool.
func PutFrame(img *image.RGBA) {
	frames.Put(img)
}

func (p *FramePool) pool(size image.Point) *sync.Pool {
	p.mu.RLock()
	pool, ok := p.pools[size]
	p.mu.RUnlock()
	if ok {
		return pool
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// Повторная проверка под эксклюзивной блокировкой
	if pool, ok = p.pools[size]; !ok {
		pool = &sync.Pool{
			New: func() any {
				return image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
			},
		}
		p.pools[size] = pool
	}
	return pool
}

func (p *FramePool) Get(w, h int) *image.RGBA {
	img := p.pool(image.Pt(w, h)).Get().(*image.RGBA)
	clear(img.Pix)
	return img
}

func (p *FramePool) Put(img *image.RGBA) {
	if img == nil || img.Rect.Min != (image.Point{}) {
		return
	}
	size := img.Rect.Size()
	p.mu.RLock()
	pool, ok := p.pools[size]
	p.mu.RUnlock()
	if ok {
		pool.Put(img)
	}
}
