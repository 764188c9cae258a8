package cpu

// The CB-prefixed table: rotate/shift (0x00-0x3F), BIT (0x40-0x7F), RES
// (0x80-0xBF) and SET (0xC0-0xFF), each across the eight register-coded
// operands 0-7 (spec.md: "CB-prefixed table"). Reached from the primary
// table's 0xCB entry (opCBPrefix). The DD/FD-prefixed DDCB/FDCB forms do
// not use this table; decode_ddcb_fdcb.go decodes them itself.

func (c *CPU) initCBOps() {
	for y := byte(0); y < 32; y++ {
		for z := byte(0); z < 8; z++ {
			op := y*8 + z
			switch {
			case op < 0x40:
				kind, reg := cbShiftKind(y), z
				c.cbOps[op] = func(cpu *CPU) { cpu.opCBShift(kind, reg) }
			case op < 0x80:
				bit, reg := y&7, z
				c.cbOps[op] = func(cpu *CPU) { cpu.opCBBit(bit, reg) }
			case op < 0xC0:
				bit, reg := y&7, z
				c.cbOps[op] = func(cpu *CPU) { cpu.opCBRes(bit, reg) }
			default:
				bit, reg := y&7, z
				c.cbOps[op] = func(cpu *CPU) { cpu.opCBSet(bit, reg) }
			}
		}
	}
}

func (c *CPU) opCBPrefix() {
	op := c.fetchOpcode()
	c.cbOps[op](c)
}

func (c *CPU) opCBShift(kind cbShiftKind, reg byte) {
	v := c.readReg8(reg)
	res := c.shift8(kind, v)
	c.writeReg8(reg, res)
	if reg == 6 {
		c.tick(15)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opCBBit(bit, reg byte) {
	if reg == 6 && c.prefix == prefixNone {
		c.WZ = c.HL() + 1
	}
	v := c.readReg8(reg)
	xyFrom := v
	if reg == 6 {
		xyFrom = byte(c.WZ >> 8)
	}
	c.bitTest(bit, v, xyFrom)
	if reg == 6 {
		c.tick(12)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opCBRes(bit, reg byte) {
	v := resBit(bit, c.readReg8(reg))
	c.writeReg8(reg, v)
	if reg == 6 {
		c.tick(15)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opCBSet(bit, reg byte) {
	v := setBit(bit, c.readReg8(reg))
	c.writeReg8(reg, v)
	if reg == 6 {
		c.tick(15)
	} else {
		c.tick(8)
	}
}
