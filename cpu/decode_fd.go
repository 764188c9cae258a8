package cpu

// The FD-prefixed table: IY substitutes for HL. Mirrors decode_dd.go
// exactly, substituting IY for IX — see its header comment for the
// general fallback-to-primary-table rule.

func (c *CPU) initFDOps() {
	c.fdOps[0x21] = (*CPU).opLDIYNN
	c.fdOps[0x22] = (*CPU).opLDNNmemIY
	c.fdOps[0x2A] = (*CPU).opLDIYNNmem
	c.fdOps[0x23] = (*CPU).opINCIY
	c.fdOps[0x2B] = (*CPU).opDECIY
	c.fdOps[0x09] = func(cpu *CPU) { cpu.opADDIYRP(0) }
	c.fdOps[0x19] = func(cpu *CPU) { cpu.opADDIYRP(1) }
	c.fdOps[0x29] = func(cpu *CPU) { cpu.opADDIYRP(2) }
	c.fdOps[0x39] = func(cpu *CPU) { cpu.opADDIYRP(3) }
	c.fdOps[0xE1] = (*CPU).opPOPIY
	c.fdOps[0xE5] = (*CPU).opPUSHIY
	c.fdOps[0xE9] = (*CPU).opJPIYInd
	c.fdOps[0xF9] = (*CPU).opLDSPIY
	c.fdOps[0xE3] = (*CPU).opEXSPIY
	c.fdOps[0x36] = (*CPU).opLDIYdN
	c.fdOps[0xCB] = (*CPU).opFDCBPrefix
}

func (c *CPU) opFDPrefix() {
	c.prefix = prefixIY
	c.indexAddrValid = false
	c.tick(4)
	op2 := c.fetchOpcode()
	if fn := c.fdOps[op2]; fn != nil {
		fn(c)
	} else {
		c.baseOps[op2](c)
	}
	c.prefix = prefixNone
}

func (c *CPU) opLDIYNN() {
	c.IY = c.fetchWord()
	c.tick(14)
}

func (c *CPU) opLDNNmemIY() {
	addr := c.fetchWord()
	c.Mem.Write16(addr, c.IY)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDIYNNmem() {
	addr := c.fetchWord()
	c.IY = c.Mem.Read16(addr)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opINCIY() {
	c.IY++
	c.tick(10)
}

func (c *CPU) opDECIY() {
	c.IY--
	c.tick(10)
}

func (c *CPU) opADDIYRP(p byte) {
	var b uint16
	switch p {
	case 0:
		b = c.BC()
	case 1:
		b = c.DE()
	case 2:
		b = c.IY
	default:
		b = c.SP
	}
	c.WZ = c.IY + 1
	c.IY = c.add16(c.IY, b)
	c.tick(15)
}

func (c *CPU) opPOPIY() {
	c.IY = c.pop()
	c.tick(14)
}

func (c *CPU) opPUSHIY() {
	c.push(c.IY)
	c.tick(15)
}

func (c *CPU) opJPIYInd() {
	c.PC = c.IY
	c.tick(8)
}

func (c *CPU) opLDSPIY() {
	c.SP = c.IY
	c.tick(10)
}

func (c *CPU) opEXSPIY() {
	sp := c.SP
	v := c.Mem.Read16(sp)
	c.Mem.Write16(sp, c.IY)
	c.IY = v
	c.WZ = v
	c.tick(23)
}

func (c *CPU) opLDIYdN() {
	d := c.fetchDisplacement()
	addr := uint16(int32(c.IY) + int32(d))
	c.WZ = addr
	n := c.fetchByte()
	c.Mem.Write8(addr, n)
	c.tick(19)
}

func (c *CPU) opFDCBPrefix() {
	c.dispatchIndexedCB(c.IY)
}
