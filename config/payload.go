package config

import "github.com/joshuapare/sjsonkit/symtab"

// payload is the per-node value. The concrete type always matches the
// node's Kind:
//
//	True, False    boolPayload
//	Number         numberPayload
//	String         stringPayload
//	Array, Object  countPayload
//	Raw            rawPayload
//	Undefined, Nil nil
type payload interface {
	isPayload()
}

type (
	boolPayload   bool
	numberPayload float64
	stringPayload symtab.Symbol
	countPayload  uint32
	rawPayload    uint64
)

func (boolPayload) isPayload()   {}
func (numberPayload) isPayload() {}
func (stringPayload) isPayload() {}
func (countPayload) isPayload()  {}
func (rawPayload) isPayload()    {}

// RawValue is an opaque 64-bit value stored with Kind Raw.
type RawValue uint64

func (p stringPayload) symbol() symtab.Symbol { return symtab.Symbol(p) }
