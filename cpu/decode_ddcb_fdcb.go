package cpu

// The nested DDCB/FDCB table (spec.md: "DDCB / FDCB nested table"):
// DD/FD CB d op, where the displacement byte d precedes the operation
// byte op — the reverse of every other prefixed form, which is why it
// can't reuse opCBPrefix's fetch order. Every one of these 256 operation
// codes addresses (IX+d)/(IY+d) as its memory operand; for the
// rotate/shift/RES/SET forms (op < 0x40 or op >= 0x80) the result is
// additionally copied into the register named by op's low 3 bits unless
// that's 6 — an undocumented "double write" quirk that real DDCB/FDCB
// opcodes always exhibit even though the mnemonics only mention (IX+d).

func (c *CPU) dispatchIndexedCB(base uint16) {
	d := c.fetchDisplacement()
	addr := uint16(int32(base) + int32(d))
	c.WZ = addr
	op := c.fetchOpcode()

	y := (op >> 3) & 7
	z := op & 7

	switch {
	case op < 0x40:
		kind := cbShiftKind(y)
		v := c.Mem.Read8(addr)
		res := c.shift8(kind, v)
		c.Mem.Write8(addr, res)
		c.writeRawReg8(z, res)
		c.tick(23)
	case op < 0x80:
		v := c.Mem.Read8(addr)
		c.bitTest(y, v, byte(addr>>8))
		c.tick(20)
	case op < 0xC0:
		v := resBit(y, c.Mem.Read8(addr))
		c.Mem.Write8(addr, v)
		c.writeRawReg8(z, v)
		c.tick(23)
	default:
		v := setBit(y, c.Mem.Read8(addr))
		c.Mem.Write8(addr, v)
		c.writeRawReg8(z, v)
		c.tick(23)
	}
}

// writeRawReg8 writes register code z to its plain B/C/D/E/H/L/A slot,
// ignoring any active index prefix — the undocumented DDCB/FDCB "copy
// result into r" side effect always targets the real H/L, never IXH/IYL,
// even though the operation itself addressed (IX+d)/(IY+d).
func (c *CPU) writeRawReg8(z, v byte) {
	switch z {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 7:
		c.A = v
	}
}

// readRawReg8 is writeRawReg8's read-side counterpart: register code z's
// plain B/C/D/E/H/L/A slot, ignoring any active index prefix. LD r,(IX+d)
// and LD (IX+d),r need this for their non-memory operand — the real Z80
// indexes only the (IX+d)/(IY+d) half of those instructions, never the H/L
// named by the other operand, even with a DD/FD prefix active.
func (c *CPU) readRawReg8(z byte) byte {
	switch z {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	default:
		return c.A
	}
}
