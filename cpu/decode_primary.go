package cpu

// The primary, unprefixed 256-entry opcode table (spec.md §4.4: "The
// primary 256-entry table is dense"). Built once per CPU by initBaseOps,
// following the standard x/y/z/p/q decomposition of the opcode byte:
//
//	x = op>>6, y = (op>>3)&7, z = op&7, p = y>>1, q = y&1

type aluKind byte

const (
	aluAdd aluKind = iota
	aluAdc
	aluSub
	aluSbc
	aluAnd
	aluXor
	aluOr
	aluCp
)

func (c *CPU) performALU(op aluKind, value byte) {
	switch op {
	case aluAdd:
		c.add8(value, 0)
	case aluAdc:
		c.add8(value, boolBit(c.Flag(FlagC)))
	case aluSub:
		c.sub8(value, 0, false)
	case aluSbc:
		c.sub8(value, boolBit(c.Flag(FlagC)), false)
	case aluAnd:
		c.and8(value)
	case aluXor:
		c.xor8(value)
	case aluOr:
		c.or8(value)
	case aluCp:
		c.sub8(value, 0, true)
	}
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// rpRead/rpWrite implement the "rp" table (BC, DE, HL, SP) used by 16-bit
// LD/INC/DEC/ADD. Index 2 (HL) is index-prefix-aware via HLreg/SetHLreg.
func (c *CPU) rpRead(p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HLreg()
	default:
		return c.SP
	}
}

func (c *CPU) rpWrite(p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHLreg(v)
	default:
		c.SP = v
	}
}

// rp2Read/rp2Write implement the "rp2" table (BC, DE, HL, AF) used by
// PUSH/POP. Index 3 (AF) is never index-prefix-redirected.
func (c *CPU) rp2Read(p byte) uint16 {
	if p == 2 {
		return c.HLreg()
	}
	if p == 3 {
		return c.AF()
	}
	return c.rpRead(p)
}

func (c *CPU) rp2Write(p byte, v uint16) {
	if p == 2 {
		c.SetHLreg(v)
	} else if p == 3 {
		c.SetAF(v)
	} else {
		c.rpWrite(p, v)
	}
}

func (c *CPU) conditionMet(cc byte) bool {
	switch cc {
	case 0:
		return !c.Flag(FlagZ)
	case 1:
		return c.Flag(FlagZ)
	case 2:
		return !c.Flag(FlagC)
	case 3:
		return c.Flag(FlagC)
	case 4:
		return !c.Flag(FlagPV)
	case 5:
		return c.Flag(FlagPV)
	case 6:
		return !c.Flag(FlagS)
	default:
		return c.Flag(FlagS)
	}
}

func (c *CPU) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*CPU).opNOP
	}

	// x=0 z=0: NOP / EX AF,AF' / DJNZ / JR / JR cc
	c.baseOps[0x00] = (*CPU).opNOP
	c.baseOps[0x08] = (*CPU).opEXAF
	c.baseOps[0x10] = (*CPU).opDJNZ
	c.baseOps[0x18] = (*CPU).opJR
	for y := byte(4); y <= 7; y++ {
		cc := y - 4
		c.baseOps[0x20+(y-4)*8] = func(cpu *CPU) { cpu.opJRCond(cc) }
	}

	// x=0 z=1: LD rp,nn / ADD HL,rp
	for p := byte(0); p < 4; p++ {
		pp := p
		c.baseOps[0x01+pp*16] = func(cpu *CPU) { cpu.opLDRPNN(pp) }
		c.baseOps[0x09+pp*16] = func(cpu *CPU) { cpu.opADDHLRP(pp) }
	}

	// x=0 z=2: indirect loads
	c.baseOps[0x02] = (*CPU).opLDBCmemA
	c.baseOps[0x12] = (*CPU).opLDDEmemA
	c.baseOps[0x22] = (*CPU).opLDNNmemHL
	c.baseOps[0x32] = (*CPU).opLDNNmemA
	c.baseOps[0x0A] = (*CPU).opLDABCmem
	c.baseOps[0x1A] = (*CPU).opLDADEmem
	c.baseOps[0x2A] = (*CPU).opLDHLNNmem
	c.baseOps[0x3A] = (*CPU).opLDANNmem

	// x=0 z=3: INC/DEC rp
	for p := byte(0); p < 4; p++ {
		pp := p
		c.baseOps[0x03+pp*16] = func(cpu *CPU) { cpu.opINCRP(pp) }
		c.baseOps[0x0B+pp*16] = func(cpu *CPU) { cpu.opDECRP(pp) }
	}

	// x=0 z=4/5/6: INC r / DEC r / LD r,n
	for y := byte(0); y < 8; y++ {
		yy := y
		c.baseOps[4+yy*8] = func(cpu *CPU) { cpu.opINCr(yy) }
		c.baseOps[5+yy*8] = func(cpu *CPU) { cpu.opDECr(yy) }
		c.baseOps[6+yy*8] = func(cpu *CPU) { cpu.opLDrImm(yy) }
	}

	// x=0 z=7: accumulator rotates, DAA, CPL, SCF, CCF
	c.baseOps[0x07] = (*CPU).opRLCA
	c.baseOps[0x0F] = (*CPU).opRRCA
	c.baseOps[0x17] = (*CPU).opRLA
	c.baseOps[0x1F] = (*CPU).opRRA
	c.baseOps[0x27] = (*CPU).opDAA
	c.baseOps[0x2F] = (*CPU).opCPL
	c.baseOps[0x37] = (*CPU).opSCF
	c.baseOps[0x3F] = (*CPU).opCCF

	// x=1: LD r,r' (0x76 is HALT, not LD (HL),(HL))
	for y := byte(0); y < 8; y++ {
		for z := byte(0); z < 8; z++ {
			op := 0x40 + y*8 + z
			if op == 0x76 {
				continue
			}
			dest, src := y, z
			c.baseOps[op] = func(cpu *CPU) { cpu.opLDrr(dest, src) }
		}
	}
	c.baseOps[0x76] = (*CPU).opHALT

	// x=2: ALU A,r
	for y := byte(0); y < 8; y++ {
		for z := byte(0); z < 8; z++ {
			op := 0x80 + y*8 + z
			kind, src := aluKind(y), z
			c.baseOps[op] = func(cpu *CPU) { cpu.opALUr(kind, src) }
		}
	}

	// x=3 z=0: RET cc
	for y := byte(0); y < 8; y++ {
		cc := y
		c.baseOps[0xC0+cc*8] = func(cpu *CPU) { cpu.opRETCond(cc) }
	}

	// x=3 z=1: POP rp2 / RET / EXX / JP (HL) / LD SP,HL
	c.baseOps[0xC1] = func(cpu *CPU) { cpu.opPOPRP2(0) }
	c.baseOps[0xD1] = func(cpu *CPU) { cpu.opPOPRP2(1) }
	c.baseOps[0xE1] = func(cpu *CPU) { cpu.opPOPRP2(2) }
	c.baseOps[0xF1] = func(cpu *CPU) { cpu.opPOPRP2(3) }
	c.baseOps[0xC9] = (*CPU).opRET
	c.baseOps[0xD9] = (*CPU).opEXX
	c.baseOps[0xE9] = (*CPU).opJPHLInd
	c.baseOps[0xF9] = (*CPU).opLDSPHL

	// x=3 z=2: JP cc,nn
	for y := byte(0); y < 8; y++ {
		cc := y
		c.baseOps[0xC2+cc*8] = func(cpu *CPU) { cpu.opJPCond(cc) }
	}

	// x=3 z=3
	c.baseOps[0xC3] = (*CPU).opJPNN
	c.baseOps[0xCB] = (*CPU).opCBPrefix
	c.baseOps[0xD3] = (*CPU).opOUTNA
	c.baseOps[0xDB] = (*CPU).opINAN
	c.baseOps[0xE3] = (*CPU).opEXSPHL
	c.baseOps[0xEB] = (*CPU).opEXDEHL
	c.baseOps[0xF3] = (*CPU).opDI
	c.baseOps[0xFB] = (*CPU).opEI

	// x=3 z=4: CALL cc,nn
	for y := byte(0); y < 8; y++ {
		cc := y
		c.baseOps[0xC4+cc*8] = func(cpu *CPU) { cpu.opCALLCond(cc) }
	}

	// x=3 z=5: PUSH rp2 / CALL nn / DD / ED / FD
	c.baseOps[0xC5] = func(cpu *CPU) { cpu.opPUSHRP2(0) }
	c.baseOps[0xD5] = func(cpu *CPU) { cpu.opPUSHRP2(1) }
	c.baseOps[0xE5] = func(cpu *CPU) { cpu.opPUSHRP2(2) }
	c.baseOps[0xF5] = func(cpu *CPU) { cpu.opPUSHRP2(3) }
	c.baseOps[0xCD] = (*CPU).opCALLNN
	c.baseOps[0xDD] = (*CPU).opDDPrefix
	c.baseOps[0xED] = (*CPU).opEDPrefix
	c.baseOps[0xFD] = (*CPU).opFDPrefix

	// x=3 z=6: ALU A,n
	for y := byte(0); y < 8; y++ {
		kind := aluKind(y)
		c.baseOps[0xC6+y*8] = func(cpu *CPU) { cpu.opALUImm(kind) }
	}

	// x=3 z=7: RST
	for y := byte(0); y < 8; y++ {
		vec := y * 8
		c.baseOps[0xC7+y*8] = func(cpu *CPU) { cpu.opRST(vec) }
	}

	if c.mode == Mode8080 {
		c.install8080Duplicates()
	}
}

// install8080Duplicates overrides the slots that only exist as prefix
// introducers on the Z80: the 8080 never decodes CB/DD/ED/FD as
// prefixes, and its relative-jump opcodes (0x08/0x10/0x18/0x20/0x28/
// 0x30/0x38) are simply unused encodings that silicon re-executes as
// one of the documented forms below.
func (c *CPU) install8080Duplicates() {
	for _, op := range []byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		c.baseOps[op] = (*CPU).opNOP
	}
	c.baseOps[0xCB] = (*CPU).opJPNN
	c.baseOps[0xD9] = (*CPU).opRET
	c.baseOps[0xDD] = (*CPU).opCALLNN
	c.baseOps[0xED] = (*CPU).opCALLNN
	c.baseOps[0xFD] = (*CPU).opCALLNN
}

func (c *CPU) opNOP() { c.tick(4) }

func (c *CPU) opHALT() {
	c.Halted = true
	c.tick(4)
}

func (c *CPU) opEXAF() {
	c.ExAF()
	c.tick(4)
}

func (c *CPU) opEXX() {
	c.Exx()
	c.tick(4)
}

func (c *CPU) opEXDEHL() {
	de, hl := c.DE(), c.HL()
	c.SetDE(hl)
	c.SetHL(de)
	c.tick(4)
}

func (c *CPU) opEXSPHL() {
	sp := c.SP
	v := c.Mem.Read16(sp)
	c.Mem.Write16(sp, c.HLreg())
	c.SetHLreg(v)
	c.WZ = v
	c.tick(19)
}

func (c *CPU) opDJNZ() {
	d := c.fetchDisplacement()
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(d))
		c.WZ = c.PC
		c.tick(13)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opJR() {
	d := c.fetchDisplacement()
	c.PC = uint16(int32(c.PC) + int32(d))
	c.WZ = c.PC
	c.tick(12)
}

func (c *CPU) opJRCond(cc byte) {
	d := c.fetchDisplacement()
	if c.conditionMet(cc) {
		c.PC = uint16(int32(c.PC) + int32(d))
		c.WZ = c.PC
		c.tick(12)
	} else {
		c.tick(7)
	}
}

func (c *CPU) opLDRPNN(p byte) {
	v := c.fetchWord()
	c.rpWrite(p, v)
	c.tick(10)
}

func (c *CPU) opADDHLRP(p byte) {
	a := c.HLreg()
	b := c.rpRead(p)
	c.WZ = a + 1
	c.SetHLreg(c.add16(a, b))
	c.tick(11)
}

func (c *CPU) opLDBCmemA() {
	c.Mem.Write8(c.BC(), c.A)
	c.WZ = uint16(c.A)<<8 | (c.BC()+1)&0xFF
	c.tick(7)
}

func (c *CPU) opLDDEmemA() {
	c.Mem.Write8(c.DE(), c.A)
	c.WZ = uint16(c.A)<<8 | (c.DE()+1)&0xFF
	c.tick(7)
}

func (c *CPU) opLDABCmem() {
	addr := c.BC()
	c.A = c.Mem.Read8(addr)
	c.WZ = addr + 1
	c.tick(7)
}

func (c *CPU) opLDADEmem() {
	addr := c.DE()
	c.A = c.Mem.Read8(addr)
	c.WZ = addr + 1
	c.tick(7)
}

func (c *CPU) opLDNNmemHL() {
	addr := c.fetchWord()
	c.Mem.Write16(addr, c.HLreg())
	c.WZ = addr + 1
	c.tick(16)
}

func (c *CPU) opLDHLNNmem() {
	addr := c.fetchWord()
	c.SetHLreg(c.Mem.Read16(addr))
	c.WZ = addr + 1
	c.tick(16)
}

func (c *CPU) opLDNNmemA() {
	addr := c.fetchWord()
	c.Mem.Write8(addr, c.A)
	c.WZ = uint16(c.A)<<8 | (addr+1)&0xFF
	c.tick(13)
}

func (c *CPU) opLDANNmem() {
	addr := c.fetchWord()
	c.A = c.Mem.Read8(addr)
	c.WZ = addr + 1
	c.tick(13)
}

func (c *CPU) opINCRP(p byte) {
	c.rpWrite(p, c.rpRead(p)+1)
	c.tick(6)
}

func (c *CPU) opDECRP(p byte) {
	c.rpWrite(p, c.rpRead(p)-1)
	c.tick(6)
}

func (c *CPU) opINCr(y byte) {
	v := c.readReg8(y)
	c.writeReg8(y, c.inc8(v))
	if y == 6 {
		c.tick(11)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opDECr(y byte) {
	v := c.readReg8(y)
	c.writeReg8(y, c.dec8(v))
	if y == 6 {
		c.tick(11)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opLDrImm(y byte) {
	if y == 6 && c.prefix != prefixNone {
		// LD (IX+d),n: displacement must be read before the immediate.
		addr := c.reg8MemAddr()
		v := c.fetchByte()
		c.Mem.Write8(addr, v)
		c.tick(19)
		return
	}
	v := c.fetchByte()
	c.writeReg8(y, v)
	if y == 6 {
		c.tick(10)
	} else {
		c.tick(7)
	}
}

// opLDrr implements LD r,r' (and, via the DD/FD decoders falling back to
// this table, LD r,(IX+d) / LD (IX+d),r). Real Z80 hardware indexes only
// the register-6 memory operand of those forms — the other operand, if it
// names H or L, always means the true register, never IXH/IXL/IYH/IYL —
// so whichever side isn't the memory operand goes through the raw
// accessor whenever the other side is register code 6.
func (c *CPU) opLDrr(dest, src byte) {
	var v byte
	if dest == 6 {
		v = c.readRawReg8(src)
	} else {
		v = c.readReg8(src)
	}
	if src == 6 {
		c.writeRawReg8(dest, v)
	} else {
		c.writeReg8(dest, v)
	}
	if dest == 6 || src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opALUr(kind aluKind, src byte) {
	v := c.readReg8(src)
	c.performALU(kind, v)
	if src == 6 {
		c.tick(7)
	} else {
		c.tick(4)
	}
}

func (c *CPU) opALUImm(kind aluKind) {
	v := c.fetchByte()
	c.performALU(kind, v)
	c.tick(7)
}

func (c *CPU) opRLCA() { c.rlca(); c.tick(4) }
func (c *CPU) opRRCA() { c.rrca(); c.tick(4) }
func (c *CPU) opRLA()  { c.rla(); c.tick(4) }
func (c *CPU) opRRA()  { c.rra(); c.tick(4) }
func (c *CPU) opDAA()  { c.daa(); c.tick(4) }
func (c *CPU) opCPL()  { c.cpl(); c.tick(4) }
func (c *CPU) opSCF()  { c.scf(); c.tick(4) }
func (c *CPU) opCCF()  { c.ccf(); c.tick(4) }

func (c *CPU) opRETCond(cc byte) {
	if c.conditionMet(cc) {
		c.PC = c.pop()
		c.WZ = c.PC
		c.tick(11)
	} else {
		c.tick(5)
	}
}

func (c *CPU) opRET() {
	c.PC = c.pop()
	c.WZ = c.PC
	c.tick(10)
}

func (c *CPU) opPOPRP2(p byte) {
	c.rp2Write(p, c.pop())
	c.tick(10)
}

func (c *CPU) opPUSHRP2(p byte) {
	c.push(c.rp2Read(p))
	c.tick(11)
}

func (c *CPU) opJPHLInd() {
	c.PC = c.HLreg()
	c.tick(4)
}

func (c *CPU) opLDSPHL() {
	c.SP = c.HLreg()
	c.tick(6)
}

func (c *CPU) opJPCond(cc byte) {
	addr := c.fetchWord()
	c.WZ = addr
	if c.conditionMet(cc) {
		c.PC = addr
	}
	c.tick(10)
}

func (c *CPU) opJPNN() {
	addr := c.fetchWord()
	c.WZ = addr
	c.PC = addr
	c.tick(10)
}

func (c *CPU) opOUTNA() {
	port := c.fetchByte()
	c.out(uint16(port), c.A)
	c.WZ = uint16(c.A)<<8 | uint16(port+1)
	c.tick(11)
}

func (c *CPU) opINAN() {
	port := c.fetchByte()
	c.WZ = uint16(c.A)<<8 | uint16(port+1)
	c.A = c.in(uint16(port))
	c.tick(11)
}

func (c *CPU) opDI() {
	c.IFF1, c.IFF2 = false, false
	c.tick(4)
}

func (c *CPU) opEI() {
	c.iffDelay = 2
	c.tick(4)
}

func (c *CPU) opCALLCond(cc byte) {
	addr := c.fetchWord()
	c.WZ = addr
	if c.conditionMet(cc) {
		c.pushPC()
		c.PC = addr
		c.tick(17)
	} else {
		c.tick(10)
	}
}

func (c *CPU) opCALLNN() {
	addr := c.fetchWord()
	c.WZ = addr
	c.pushPC()
	c.PC = addr
	c.tick(17)
}

func (c *CPU) opRST(vector byte) {
	c.pushPC()
	c.PC = uint16(vector)
	c.WZ = c.PC
	c.tick(11)
}
