package listing

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// Image is an immutable memory image that can be decoded at arbitrary
// addresses. Decoded instructions are cached by address. An Image is safe
// for concurrent use.
type Image struct {
	mem    []byte
	origin uint64
	cache  *lru.Cache
}

// NewImage returns an Image of mem loaded at origin, caching up to
// cacheSize decoded instructions.
func NewImage(mem []byte, origin uint64, cacheSize int) (*Image, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Image{mem: mem, origin: origin, cache: cache}, nil
}

// Origin returns the address of the first byte of the image.
func (img *Image) Origin() uint64 {
	return img.origin
}

// End returns the address one past the last byte of the image.
func (img *Image) End() uint64 {
	return img.origin + uint64(len(img.mem))
}

// At decodes the instruction at addr. Decode failures are reported in the
// Err field of the result; the error return is for addresses outside the
// image or not word aligned.
func (img *Image) At(addr uint64) (AsmInstruction, error) {
	if addr < img.origin || addr >= img.End() {
		return AsmInstruction{}, errors.Errorf("address %#x outside image [%#x, %#x)", addr, img.origin, img.End())
	}
	if (addr-img.origin)&1 != 0 {
		return AsmInstruction{}, errors.Errorf("address %#x is not word aligned", addr)
	}
	if v, ok := img.cache.Get(addr); ok {
		return v.(AsmInstruction), nil
	}
	inst := decodeAt(img.mem[addr-img.origin:], addr)
	img.cache.Add(addr, inst)
	return inst, nil
}

// Cached returns the number of decoded instructions currently cached.
func (img *Image) Cached() int {
	return img.cache.Len()
}

// Walk decodes count instructions starting at addr, following the
// straight-line order of the image. count <= 0 walks to the end.
func (img *Image) Walk(addr uint64, count int) ([]AsmInstruction, error) {
	var r []AsmInstruction
	for addr < img.End() && (count <= 0 || len(r) < count) {
		inst, err := img.At(addr)
		if err != nil {
			return r, err
		}
		r = append(r, inst)
		addr += uint64(inst.Size)
	}
	return r, nil
}
