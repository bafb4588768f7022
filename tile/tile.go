// Package tile defines the spatial elements handed to the rendering
// pipeline. It does not decide how tiles are subdivided.
package tile

import (
	"fmt"
	"sync/atomic"

	"deedles.dev/telluris/geo"
)

// Indexer is implemented by values that can be located by a single
// geographic coordinate.
type Indexer interface {
	GeoIndex() geo.Geographic
}

// ID identifies a tile. The zero ID is never allocated.
type ID uint64

// IDs allocates tile identifiers. It is safe for concurrent use. The
// zero value is ready to use and starts at 1.
type IDs struct {
	last atomic.Uint64
}

// Next returns an identifier that has never been returned by i.
func (i *IDs) Next() ID {
	return ID(i.last.Add(1))
}

// Tile is the fundamental spatial element, serving as the entry point
// of the rendering pipeline.
type Tile struct {
	id     ID
	bounds geo.Bounds
}

// New returns a tile covering bounds.
func New(id ID, bounds geo.Bounds) Tile {
	return Tile{id: id, bounds: bounds}
}

func (t Tile) ID() ID { return t.id }

func (t Tile) Bounds() geo.Bounds { return t.bounds }

// GeoIndex returns the center of the tile's bounds.
func (t Tile) GeoIndex() geo.Geographic { return t.bounds.Center() }

func (t Tile) String() string {
	return fmt.Sprintf("tile %v %v", t.id, t.bounds)
}

// Quadrant is one of the four divisions of a planar area.
type Quadrant int

const (
	NorthWest Quadrant = iota
	NorthEast
	SouthWest
	SouthEast
)

func (q Quadrant) String() string {
	switch q {
	case NorthWest:
		return "north-west"
	case NorthEast:
		return "north-east"
	case SouthWest:
		return "south-west"
	case SouthEast:
		return "south-east"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// MaxDepth is the deepest level of a quadtree address.
const MaxDepth = 23

// Address locates a node of a quadtree by its row and column at a
// given depth. The root is at depth 0 and every level doubles the
// number of rows and columns.
type Address struct {
	Row, Column, Depth uint32
}

// NewAddress returns the address of the node at row and column of the
// given depth. depth must not exceed MaxDepth and row and column must
// be less than 2^depth.
func NewAddress(row, column, depth uint32) Address {
	geo.Contract(depth <= MaxDepth, "new address", "depth %v exceeds %v", depth, MaxDepth)
	size := uint32(1) << depth
	geo.Contract(row < size, "new address", "row %v out of depth %v", row, depth)
	geo.Contract(column < size, "new address", "column %v out of depth %v", column, depth)

	return Address{Row: row, Column: column, Depth: depth}
}
