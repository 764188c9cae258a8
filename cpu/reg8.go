package cpu

// Register-coded operand access shared by the primary decoder and (via
// the active prefixKind) by the DD/FD decoders. Register codes follow
// the standard Z80 encoding: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A. Under an
// active index prefix, codes 4/5/6 transparently become
// IXH/IXL/(IX+d) or IYH/IYL/(IY+d) — this is what lets the primary
// table's LD r,r' / ALU A,r / INC r / DEC r opcodes double as the
// DD/FD-prefixed indexed forms without a second copy of their logic.

func (c *CPU) readReg8(code byte) byte {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		switch c.prefix {
		case prefixIX:
			return c.IXH()
		case prefixIY:
			return c.IYH()
		default:
			return c.H
		}
	case 5:
		switch c.prefix {
		case prefixIX:
			return c.IXL()
		case prefixIY:
			return c.IYL()
		default:
			return c.L
		}
	case 6:
		return c.Mem.Read8(c.reg8MemAddr())
	default:
		return c.A
	}
}

func (c *CPU) writeReg8(code byte, v byte) {
	switch code {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		switch c.prefix {
		case prefixIX:
			c.SetIXH(v)
		case prefixIY:
			c.SetIYH(v)
		default:
			c.H = v
		}
	case 5:
		switch c.prefix {
		case prefixIX:
			c.SetIXL(v)
		case prefixIY:
			c.SetIYL(v)
		default:
			c.L = v
		}
	case 6:
		c.Mem.Write8(c.reg8MemAddr(), v)
	default:
		c.A = v
	}
}

// reg8MemAddr resolves the address that register code 6 refers to. Under
// no prefix this is plain HL. Under an index prefix it is IX/IY plus a
// signed displacement byte that follows the opcode in memory — fetched
// once per instruction and cached, since some instructions (INC (IX+d),
// DEC (IX+d)) read and then write the same address and must not consume
// the displacement byte twice. The DDCB/FDCB forms fetch their own
// displacement in dispatchIndexedCB and do not come through here.
func (c *CPU) reg8MemAddr() uint16 {
	if c.prefix == prefixNone {
		return c.HL()
	}
	if c.indexAddrValid {
		return c.indexAddr
	}
	d := c.fetchDisplacement()
	base := c.IX
	if c.prefix == prefixIY {
		base = c.IY
	}
	addr := uint16(int32(base) + int32(d))
	c.indexAddr = addr
	c.indexAddrValid = true
	c.WZ = addr
	c.tick(5) // displacement fetch + internal address calculation
	return addr
}

// HLreg/SetHLreg are "HL, or whichever index register the active DD/FD
// prefix substitutes for it". Every primary-table instruction that
// treats HL as a 16-bit operand (ADD HL,rr; INC/DEC HL; LD HL,nn;
// LD (nn),HL; LD HL,(nn); PUSH/POP HL; JP (HL); LD SP,HL; EX (SP),HL)
// goes through these so it doubles as the indexed form — EX DE,HL is the
// one documented exception and calls c.HL()/c.SetHL() directly instead.
func (c *CPU) HLreg() uint16 {
	switch c.prefix {
	case prefixIX:
		return c.IX
	case prefixIY:
		return c.IY
	default:
		return c.HL()
	}
}

func (c *CPU) SetHLreg(v uint16) {
	switch c.prefix {
	case prefixIX:
		c.IX = v
	case prefixIY:
		c.IY = v
	default:
		c.SetHL(v)
	}
}
