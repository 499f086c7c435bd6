package aamesh

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"slices"
	"sync/atomic"

	"github.com/gogpu/aamesh/internal/cache"
)

// Fingerprint identifies the content of a draw call: its path elements,
// stroke, style, scale and clipping. Equal calls always share a
// fingerprint; distinct calls collide only with hash probability.
func Fingerprint(call DrawCall) uint64 {
	return snapshot(call).fingerprint()
}

// pathKey is a copy of a path's content.
type pathKey struct {
	present   bool
	flattened bool
	elements  []PathElement
}

func pathKeyOf(p *Path) pathKey {
	if p == nil {
		return pathKey{}
	}
	return pathKey{
		present:   true,
		flattened: p.Flattened(),
		elements:  slices.Clone(p.Elements()),
	}
}

func (k pathKey) equal(o pathKey) bool {
	return k.present == o.present &&
		k.flattened == o.flattened &&
		slices.Equal(k.elements, o.elements)
}

// drawKey is a copy of every input of a draw call that affects its result.
type drawKey struct {
	path   pathKey
	scale  float32
	stroke *Stroke
	style  Style
	clip   pathKey
	diff   pathKey
	offset Point
}

func snapshot(call DrawCall) drawKey {
	var o drawOptions
	for _, opt := range call.Options {
		opt(&o)
	}
	k := drawKey{
		path:   pathKeyOf(call.Path),
		scale:  call.Scale,
		style:  call.Style,
		clip:   pathKeyOf(o.clip),
		diff:   pathKeyOf(o.diff),
		offset: o.offset,
	}
	if call.Stroke != nil {
		s := call.Stroke.Clone()
		k.stroke = &s
	}
	return k
}

func (k drawKey) equal(o drawKey) bool {
	return k.path.equal(o.path) &&
		k.scale == o.scale &&
		strokeEqual(k.stroke, o.stroke) &&
		k.style == o.style &&
		k.clip.equal(o.clip) &&
		k.diff.equal(o.diff) &&
		k.offset == o.offset
}

func strokeEqual(a, b *Stroke) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Width != b.Width || a.Cap != b.Cap || a.Join != b.Join {
		return false
	}
	if a.Dash == nil || b.Dash == nil {
		return a.Dash == b.Dash
	}
	return a.Dash.Offset == b.Dash.Offset && slices.Equal(a.Dash.Array, b.Dash.Array)
}

// size approximates the memory held by the key in bytes.
func (k drawKey) size() int64 {
	n := len(k.path.elements) + len(k.clip.elements) + len(k.diff.elements)
	return int64(32 * n)
}

func (k drawKey) fingerprint() uint64 {
	h := fingerprinter{h: fnv.New64a()}

	h.writePath(k.path)
	h.writeFloat(k.scale)

	if s := k.stroke; s != nil {
		h.writeTag(1)
		h.writeFloat(s.Width)
		h.writeInt(int64(s.Cap))
		h.writeInt(int64(s.Join))
		if s.Dash != nil {
			h.writeTag(1)
			h.writeInt(int64(len(s.Dash.Array)))
			for _, l := range s.Dash.Array {
				h.writeFloat(l)
			}
			h.writeInt(int64(s.Dash.Offset))
		} else {
			h.writeTag(0)
		}
	} else {
		h.writeTag(0)
	}

	switch s := k.style.(type) {
	case SolidStyle:
		h.writeTag(1)
		h.writeInt(int64(s.Color))
	case GradientStyle:
		h.writeTag(2)
		for _, v := range s.Payload {
			h.writeFloat(v)
		}
	default:
		h.writeTag(0)
	}

	h.writePath(k.clip)
	h.writePath(k.diff)
	h.writePoint(k.offset)

	return h.h.Sum64()
}

type fingerprinter struct {
	h   hash.Hash64
	buf [8]byte
}

func (f *fingerprinter) writeTag(b byte) {
	f.buf[0] = b
	f.h.Write(f.buf[:1])
}

func (f *fingerprinter) writeInt(v int64) {
	binary.LittleEndian.PutUint64(f.buf[:], uint64(v))
	f.h.Write(f.buf[:])
}

func (f *fingerprinter) writeFloat(v float32) {
	binary.LittleEndian.PutUint32(f.buf[:4], math.Float32bits(v))
	f.h.Write(f.buf[:4])
}

func (f *fingerprinter) writePoint(p Point) {
	f.writeFloat(p.X)
	f.writeFloat(p.Y)
}

func (f *fingerprinter) writePath(k pathKey) {
	if !k.present {
		f.writeTag(0)
		return
	}
	if k.flattened {
		f.writeTag(2)
	} else {
		f.writeTag(1)
	}
	f.writeInt(int64(len(k.elements)))
	for _, elem := range k.elements {
		switch e := elem.(type) {
		case MoveTo:
			f.writeTag('M')
			f.writePoint(e.Point)
		case LineTo:
			f.writeTag('L')
			f.writePoint(e.Point)
		case QuadTo:
			f.writeTag('Q')
			f.writePoint(e.Control)
			f.writePoint(e.Point)
		case CubicTo:
			f.writeTag('C')
			f.writePoint(e.Control1)
			f.writePoint(e.Control2)
			f.writePoint(e.Point)
		case Close:
			f.writeTag('Z')
		}
	}
}

// CacheStats reports MeshCache usage.
type CacheStats = cache.Stats

// cached is a result stored together with the inputs that built it.
type cached struct {
	key    drawKey
	result *Result
}

func (c *cached) size() int64 {
	return c.result.Size() + c.key.size()
}

// MeshCache keeps recently built results keyed by Fingerprint, bounded by
// their approximate memory size. It belongs to the caller: the pipeline
// itself never caches. A MeshCache must only be used with one Pipeline
// configuration.
//
// Every entry keeps a copy of its draw call's inputs, and a lookup only
// hits when they are equal, so a fingerprint collision is a miss rather
// than a wrong mesh. Colliding calls evict each other.
//
// MeshCache is safe for concurrent use.
type MeshCache struct {
	lru        *cache.Cache[uint64, *cached]
	collisions atomic.Uint64
}

// NewMeshCache creates a cache holding at most budget bytes of results.
// A budget of 0 means unlimited.
func NewMeshCache(budget int64) *MeshCache {
	return &MeshCache{
		lru: cache.New[uint64, *cached](budget, (*cached).size),
	}
}

// Get returns the cached result for call.
func (c *MeshCache) Get(call DrawCall) (*Result, bool) {
	k := snapshot(call)
	return c.get(k.fingerprint(), k)
}

// Put stores r as the result of call.
func (c *MeshCache) Put(call DrawCall, r *Result) {
	k := snapshot(call)
	c.put(k.fingerprint(), k, r)
}

// Draw returns the cached result for call or builds and caches it. Two
// goroutines missing the same key concurrently may both build it.
func (c *MeshCache) Draw(p *Pipeline, call DrawCall) (*Result, error) {
	k := snapshot(call)
	fp := k.fingerprint()
	if r, ok := c.get(fp, k); ok {
		return r, nil
	}
	r, err := p.Draw(call)
	if err != nil {
		return nil, err
	}
	c.put(fp, k, r)
	return r, nil
}

func (c *MeshCache) get(fp uint64, k drawKey) (*Result, bool) {
	e, ok := c.lru.Get(fp)
	if !ok {
		return nil, false
	}
	if !e.key.equal(k) {
		c.collisions.Add(1)
		return nil, false
	}
	return e.result, true
}

func (c *MeshCache) put(fp uint64, k drawKey, r *Result) {
	c.lru.Set(fp, &cached{key: k, result: r})
}

// Clear drops every cached result.
func (c *MeshCache) Clear() {
	c.lru.Clear()
}

// Stats returns cache statistics. Lookups rejected because of a
// fingerprint collision count as misses.
func (c *MeshCache) Stats() CacheStats {
	s := c.lru.Stats()
	if n := c.collisions.Load(); n > 0 {
		s.Hits -= n
		s.Misses += n
		s.HitRate = float64(s.Hits) / float64(s.Hits+s.Misses)
	}
	return s
}
