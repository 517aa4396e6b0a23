package wire

import (
	"errors"
	"math/bits"
	"slices"
)

var ErrMaskKeyRange = errors.New("mask key out of range")

const (
	updateMaskBlockBits = 32
	updateMaskMaxBlocks = 0xFF
	// UpdateMaskMaxKeys is the number of keys addressable by a u8 block count.
	UpdateMaskMaxKeys = updateMaskMaxBlocks * updateMaskBlockBits
)

// UpdateMask is a sparse map of object field offsets to u32 values.
//
// On the wire it is a u8 block count, that many u32 bit blocks and one u32
// value per set bit in ascending key order.
type UpdateMask struct {
	fields map[int]uint32
}

func (m *UpdateMask) Set(key int, v uint32) error {
	if key < 0 || key >= UpdateMaskMaxKeys {
		return ErrMaskKeyRange
	}
	if m.fields == nil {
		m.fields = make(map[int]uint32)
	}
	m.fields[key] = v
	return nil
}

func (m UpdateMask) Get(key int) (v uint32, ok bool) {
	v, ok = m.fields[key]
	return
}

func (m *UpdateMask) Delete(key int) {
	delete(m.fields, key)
}

func (m UpdateMask) Len() int {
	return len(m.fields)
}

// Keys returns set keys in ascending order.
func (m UpdateMask) Keys() []int {
	return sortedKeys(m.fields)
}

// BlockCount is the minimum number of blocks covering the highest key.
func (m UpdateMask) BlockCount() int {
	if len(m.fields) == 0 {
		return 0
	}
	highest := 0
	for k := range m.fields {
		highest = max(highest, k)
	}
	return highest/updateMaskBlockBits + 1
}

func (m *UpdateMask) Decode(r Reader) (err error) {
	count, err := r.ReadByte()
	if err != nil {
		return
	}

	blocks := make([]uint32, count)
	for i := range blocks {
		if blocks[i], err = ReadU32(r); err != nil {
			return
		}
	}

	var decoded UpdateMask
	for i, block := range blocks {
		for ; block != 0; block &= block - 1 {
			key := i*updateMaskBlockBits + bits.TrailingZeros32(block)

			var v uint32
			if v, err = ReadU32(r); err != nil {
				return
			}
			decoded.Set(key, v)
		}
	}

	*m = decoded
	return
}

func (m UpdateMask) AppendTo(b []byte) []byte {
	keys := m.Keys()
	if len(keys) == 0 {
		return append(b, 0)
	}

	blocks := make([]uint32, m.BlockCount())
	for _, k := range keys {
		blocks[k/updateMaskBlockBits] |= 1 << (k % updateMaskBlockBits)
	}

	b = append(b, byte(len(blocks)))
	for _, block := range blocks {
		b = AppendU32(b, block)
	}
	for _, k := range keys {
		b = AppendU32(b, m.fields[k])
	}
	return b
}

func (m UpdateMask) Size() int {
	if len(m.fields) == 0 {
		return 1
	}
	return 1 + m.BlockCount()*4 + len(m.fields)*4
}

// VanillaAuraMask maps one of 32 aura slots to a u16 spell id, behind a u32 mask.
type VanillaAuraMask struct {
	auras map[int]uint16
}

func (m *VanillaAuraMask) Set(slot int, spell uint16) error {
	if slot < 0 || slot >= 32 {
		return ErrMaskKeyRange
	}
	if m.auras == nil {
		m.auras = make(map[int]uint16)
	}
	m.auras[slot] = spell
	return nil
}

func (m VanillaAuraMask) Get(slot int) (spell uint16, ok bool) {
	spell, ok = m.auras[slot]
	return
}

func (m VanillaAuraMask) Len() int { return len(m.auras) }

func (m VanillaAuraMask) Slots() []int { return sortedKeys(m.auras) }

func (m *VanillaAuraMask) Decode(r Reader) (err error) {
	mask, err := ReadU32(r)
	if err != nil {
		return
	}

	var decoded VanillaAuraMask
	for ; mask != 0; mask &= mask - 1 {
		var spell uint16
		if spell, err = ReadU16(r); err != nil {
			return
		}
		decoded.Set(bits.TrailingZeros32(mask), spell)
	}

	*m = decoded
	return
}

func (m VanillaAuraMask) AppendTo(b []byte) []byte {
	slots := m.Slots()

	var mask uint32
	for _, s := range slots {
		mask |= 1 << s
	}
	b = AppendU32(b, mask)
	for _, s := range slots {
		b = AppendU16(b, m.auras[s])
	}
	return b
}

func (m VanillaAuraMask) Size() int {
	return 4 + len(m.auras)*2
}

// Aura is a spell id and its per-slot flags for the 64 slot aura masks.
type Aura[S uint16 | uint32] struct {
	Spell S
	Flags uint8
}

// TbcAuraMask maps one of 64 slots to a u16 spell and u8 flags, behind a u64 mask.
type TbcAuraMask struct {
	auras map[int]Aura[uint16]
}

func (m *TbcAuraMask) Set(slot int, a Aura[uint16]) error {
	if slot < 0 || slot >= 64 {
		return ErrMaskKeyRange
	}
	if m.auras == nil {
		m.auras = make(map[int]Aura[uint16])
	}
	m.auras[slot] = a
	return nil
}

func (m TbcAuraMask) Get(slot int) (a Aura[uint16], ok bool) {
	a, ok = m.auras[slot]
	return
}

func (m TbcAuraMask) Len() int { return len(m.auras) }

func (m TbcAuraMask) Slots() []int { return sortedKeys(m.auras) }

func (m *TbcAuraMask) Decode(r Reader) (err error) {
	mask, err := ReadU64(r)
	if err != nil {
		return
	}

	var decoded TbcAuraMask
	for ; mask != 0; mask &= mask - 1 {
		var a Aura[uint16]
		if a.Spell, err = ReadU16(r); err != nil {
			return
		}
		if a.Flags, err = ReadU8(r); err != nil {
			return
		}
		decoded.Set(bits.TrailingZeros64(mask), a)
	}

	*m = decoded
	return
}

func (m TbcAuraMask) AppendTo(b []byte) []byte {
	slots := m.Slots()

	var mask uint64
	for _, s := range slots {
		mask |= 1 << s
	}
	b = AppendU64(b, mask)
	for _, s := range slots {
		b = AppendU16(b, m.auras[s].Spell)
		b = AppendU8(b, m.auras[s].Flags)
	}
	return b
}

func (m TbcAuraMask) Size() int {
	return 8 + len(m.auras)*3
}

// WrathAuraMask maps one of 64 slots to a u32 spell and u8 flags, behind a u64 mask.
type WrathAuraMask struct {
	auras map[int]Aura[uint32]
}

func (m *WrathAuraMask) Set(slot int, a Aura[uint32]) error {
	if slot < 0 || slot >= 64 {
		return ErrMaskKeyRange
	}
	if m.auras == nil {
		m.auras = make(map[int]Aura[uint32])
	}
	m.auras[slot] = a
	return nil
}

func (m WrathAuraMask) Get(slot int) (a Aura[uint32], ok bool) {
	a, ok = m.auras[slot]
	return
}

func (m WrathAuraMask) Len() int { return len(m.auras) }

func (m WrathAuraMask) Slots() []int { return sortedKeys(m.auras) }

func (m *WrathAuraMask) Decode(r Reader) (err error) {
	mask, err := ReadU64(r)
	if err != nil {
		return
	}

	var decoded WrathAuraMask
	for ; mask != 0; mask &= mask - 1 {
		var a Aura[uint32]
		if a.Spell, err = ReadU32(r); err != nil {
			return
		}
		if a.Flags, err = ReadU8(r); err != nil {
			return
		}
		decoded.Set(bits.TrailingZeros64(mask), a)
	}

	*m = decoded
	return
}

func (m WrathAuraMask) AppendTo(b []byte) []byte {
	slots := m.Slots()

	var mask uint64
	for _, s := range slots {
		mask |= 1 << s
	}
	b = AppendU64(b, mask)
	for _, s := range slots {
		b = AppendU32(b, m.auras[s].Spell)
		b = AppendU8(b, m.auras[s].Flags)
	}
	return b
}

func (m WrathAuraMask) Size() int {
	return 8 + len(m.auras)*5
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
