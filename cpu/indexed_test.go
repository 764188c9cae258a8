package cpu

import "testing"

func TestLDIXNNAndIncDec(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	rig.load(0x0000, []byte{0xDD, 0x21, 0x00, 0x30, 0xDD, 0x23, 0xDD, 0x2B, 0xDD, 0x2B})
	rig.run(t, 4)
	requireEqualU16(t, "IX", c.IX, 0x2FFF)
}

func TestLDIXdNWritesDisplacedMemory(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.IX = 0x4000
	rig.load(0x0000, []byte{0xDD, 0x36, 0x05, 0x99}) // LD (IX+5),0x99
	rig.run(t, 1)
	requireEqualU8(t, "(IX+5)", c.Mem.Read8(0x4005), 0x99)
}

func TestIndexedLDReadsIXPlusDisplacement(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.IX = 0x1234
	// LD A,(IX+2) - falls back to the primary table's LD r,(HL) shape
	// with HLreg() redirected to IX+d.
	c.Mem.Write8(0x1236, 0x77)
	rig.load(0x0000, []byte{0xDD, 0x7E, 0x02})
	rig.run(t, 1)
	requireEqualU8(t, "A", c.A, 0x77)
}

func TestEXDEHLIsImmuneToIndexPrefix(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.SetDE(0x1111)
	c.SetHL(0x2222)
	c.IX = 0x3333
	// EX DE,HL (0xEB) behind a DD prefix still swaps DE/HL, not IX.
	rig.load(0x0000, []byte{0xDD, 0xEB})
	rig.run(t, 1)
	requireEqualU16(t, "DE", c.DE(), 0x2222)
	requireEqualU16(t, "HL", c.HL(), 0x1111)
	requireEqualU16(t, "IX", c.IX, 0x3333)
}

func TestDDCBShiftAlsoWritesRealRegisterNotIXHalf(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.IX = 0x5000
	c.Mem.Write8(0x5003, 0x01)
	// RLC (IX+3),H -- op = 0*8+4 = 0x04
	rig.load(0x0000, []byte{0xDD, 0xCB, 0x03, 0x04})
	rig.run(t, 1)
	requireEqualU8(t, "(IX+3)", c.Mem.Read8(0x5003), 0x02)
	requireEqualU8(t, "H (real, not IXH)", c.H, 0x02)
}

func TestLDHIndexedLeavesRealHLUntouchedByPrefix(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.IX = 0x4000
	c.H, c.L = 0x11, 0x22
	c.Mem.Write8(0x4005, 0x99)
	// LD H,(IX+5): the memory operand is indexed, but the destination is
	// the real H register, not IXH.
	rig.load(0x0000, []byte{0xDD, 0x66, 0x05})
	rig.run(t, 1)
	requireEqualU8(t, "H", c.H, 0x99)
	requireEqualU16(t, "IX (unchanged)", c.IX, 0x4000)

	rig2 := newZ80TestRig()
	c2 := rig2.cpu
	c2.IX = 0x5000
	c2.H = 0x42
	// LD (IX+3),H: the source operand is the real H register, not IXH.
	rig2.load(0x0000, []byte{0xDD, 0x74, 0x03})
	rig2.run(t, 1)
	requireEqualU8(t, "(IX+3)", c2.Mem.Read8(0x5003), 0x42)
}

func TestFDAddIYSetsWZ(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.IY = 0x0100
	c.SetBC(0x0001)
	rig.load(0x0000, []byte{0xFD, 0x09}) // ADD IY,BC
	rig.run(t, 1)
	requireEqualU16(t, "IY", c.IY, 0x0101)
	requireEqualU16(t, "WZ", c.WZ, 0x0101)
}

func TestPushPopIY(t *testing.T) {
	rig := newZ80TestRig()
	c := rig.cpu
	c.SP = 0x2000
	c.IY = 0xBEEF
	rig.load(0x0000, []byte{0xFD, 0xE5, 0xFD, 0xE1}) // PUSH IY; POP IY
	rig.run(t, 1) // PUSH IY
	c.IY = 0x0000
	rig.run(t, 1) // POP IY
	requireEqualU16(t, "IY", c.IY, 0xBEEF)
	requireEqualU16(t, "SP", c.SP, 0x2000)
}
