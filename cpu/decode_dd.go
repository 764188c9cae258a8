package cpu

// The DD-prefixed table: IX substitutes for HL (spec.md: "DD-prefixed
// table"). Most opcodes need no dedicated entry at all — the primary
// table's existing HL-based logic already becomes the IX form once
// readReg8/writeReg8/HLreg/SetHLreg see prefixIX active (reg8.go). Only
// the opcodes below genuinely need their own code: the ones with a
// 16-bit IX operand spelled out in the instruction itself (so there is
// no generic "HL operand" for the prefix layer to intercept), plus
// LD (IX+d),n (0x36, whose displacement must be read before the
// immediate) and the DDCB second-level prefix (0xCB).
//
// Any opcode with no entry here falls back to the primary table running
// with prefixIX active — this is also exactly how real hardware resolves
// a DD prefix in front of an opcode it doesn't special-case: the DD is
// consumed, 4 cycles are spent, and the following byte decodes as if
// unprefixed (spec.md §4.4, §7).

func (c *CPU) initDDOps() {
	c.ddOps[0x21] = (*CPU).opLDIXNN
	c.ddOps[0x22] = (*CPU).opLDNNmemIX
	c.ddOps[0x2A] = (*CPU).opLDIXNNmem
	c.ddOps[0x23] = (*CPU).opINCIX
	c.ddOps[0x2B] = (*CPU).opDECIX
	c.ddOps[0x09] = func(cpu *CPU) { cpu.opADDIXRP(0) }
	c.ddOps[0x19] = func(cpu *CPU) { cpu.opADDIXRP(1) }
	c.ddOps[0x29] = func(cpu *CPU) { cpu.opADDIXRP(2) }
	c.ddOps[0x39] = func(cpu *CPU) { cpu.opADDIXRP(3) }
	c.ddOps[0xE1] = (*CPU).opPOPIX
	c.ddOps[0xE5] = (*CPU).opPUSHIX
	c.ddOps[0xE9] = (*CPU).opJPIXInd
	c.ddOps[0xF9] = (*CPU).opLDSPIX
	c.ddOps[0xE3] = (*CPU).opEXSPIX
	c.ddOps[0x36] = (*CPU).opLDIXdN
	c.ddOps[0xCB] = (*CPU).opDDCBPrefix
}

func (c *CPU) opDDPrefix() {
	c.prefix = prefixIX
	c.indexAddrValid = false
	c.tick(4)
	op2 := c.fetchOpcode()
	if fn := c.ddOps[op2]; fn != nil {
		fn(c)
	} else {
		c.baseOps[op2](c)
	}
	c.prefix = prefixNone
}

func (c *CPU) opLDIXNN() {
	c.IX = c.fetchWord()
	c.tick(14)
}

func (c *CPU) opLDNNmemIX() {
	addr := c.fetchWord()
	c.Mem.Write16(addr, c.IX)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDIXNNmem() {
	addr := c.fetchWord()
	c.IX = c.Mem.Read16(addr)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opINCIX() {
	c.IX++
	c.tick(10)
}

func (c *CPU) opDECIX() {
	c.IX--
	c.tick(10)
}

func (c *CPU) opADDIXRP(p byte) {
	var b uint16
	switch p {
	case 0:
		b = c.BC()
	case 1:
		b = c.DE()
	case 2:
		b = c.IX
	default:
		b = c.SP
	}
	c.WZ = c.IX + 1
	c.IX = c.add16(c.IX, b)
	c.tick(15)
}

func (c *CPU) opPOPIX() {
	c.IX = c.pop()
	c.tick(14)
}

func (c *CPU) opPUSHIX() {
	c.push(c.IX)
	c.tick(15)
}

func (c *CPU) opJPIXInd() {
	c.PC = c.IX
	c.tick(8)
}

func (c *CPU) opLDSPIX() {
	c.SP = c.IX
	c.tick(10)
}

func (c *CPU) opEXSPIX() {
	sp := c.SP
	v := c.Mem.Read16(sp)
	c.Mem.Write16(sp, c.IX)
	c.IX = v
	c.WZ = v
	c.tick(23)
}

// opLDIXdN implements LD (IX+d),n: unlike every other register-coded
// write, the displacement byte precedes the immediate operand, so this
// can't reuse the generic opLDrImm(6) path.
func (c *CPU) opLDIXdN() {
	d := c.fetchDisplacement()
	addr := uint16(int32(c.IX) + int32(d))
	c.WZ = addr
	n := c.fetchByte()
	c.Mem.Write8(addr, n)
	c.tick(19)
}

func (c *CPU) opDDCBPrefix() {
	c.dispatchIndexedCB(c.IX)
}
