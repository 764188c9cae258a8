package cpu

// Rotates, shifts, bit test/set/reset, RLD/RRD and the block move/compare
// primitives (spec.md: "Rotates/Shifts", "BIT n,r", "SET n,r / RES n,r",
// "RLD/RRD", "Block ops").

// rlca/rrca/rla/rra rotate the accumulator. Unlike the CB-prefixed
// rotate group these never touch S/Z/P/V — only H, N, C and the
// undocumented X/Y (copied from the new A) change.
func (c *CPU) rlca() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.setAccumulatorRotateFlags(carry)
}

func (c *CPU) rrca() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.setAccumulatorRotateFlags(carry)
}

func (c *CPU) rla() {
	oldCarry := c.Flag(FlagC)
	carry := c.A&0x80 != 0
	c.A <<= 1
	if oldCarry {
		c.A |= 0x01
	}
	c.setAccumulatorRotateFlags(carry)
}

func (c *CPU) rra() {
	oldCarry := c.Flag(FlagC)
	carry := c.A&0x01 != 0
	c.A >>= 1
	if oldCarry {
		c.A |= 0x80
	}
	c.setAccumulatorRotateFlags(carry)
}

func (c *CPU) setAccumulatorRotateFlags(carryOut bool) {
	f := c.F &^ (FlagH | FlagN | FlagC | FlagX | FlagY)
	if carryOut {
		f |= FlagC
	}
	f |= c.A & (FlagX | FlagY)
	c.F = f
}

// cbShiftKind selects one of the eight CB-prefixed rotate/shift
// operations (spec.md: "the CB-prefixed RLC/RRC/RL/RR/SLA/SRA/SLL/SRL").
type cbShiftKind byte

const (
	shiftRLC cbShiftKind = iota
	shiftRRC
	shiftRL
	shiftRR
	shiftSLA
	shiftSRA
	shiftSLL
	shiftSRL
)

// shift8 performs one CB-family rotate/shift on v and returns the result,
// setting S/Z/P/X/Y from the result and C from the bit shifted out —
// unlike the accumulator-only forms above.
func (c *CPU) shift8(kind cbShiftKind, v byte) byte {
	var res byte
	var carryOut bool

	switch kind {
	case shiftRLC:
		carryOut = v&0x80 != 0
		res = v<<1 | v>>7
	case shiftRRC:
		carryOut = v&0x01 != 0
		res = v>>1 | v<<7
	case shiftRL:
		carryOut = v&0x80 != 0
		res = v << 1
		if c.Flag(FlagC) {
			res |= 0x01
		}
	case shiftRR:
		carryOut = v&0x01 != 0
		res = v >> 1
		if c.Flag(FlagC) {
			res |= 0x80
		}
	case shiftSLA:
		carryOut = v&0x80 != 0
		res = v << 1
	case shiftSRA:
		carryOut = v&0x01 != 0
		res = v>>1 | v&0x80
	case shiftSLL: // undocumented: shifts left, inserts 1 into bit 0
		carryOut = v&0x80 != 0
		res = v<<1 | 0x01
	case shiftSRL:
		carryOut = v&0x01 != 0
		res = v >> 1
	}

	f := sz5p3Table[res]
	if carryOut {
		f |= FlagC
	}
	c.F = f
	return res
}

// bitTest implements BIT n,r / BIT n,(HL) / BIT n,(IX+d) / BIT n,(IY+d).
// xyFrom is the register's own value for the register form, or the high
// byte of WZ/MEMPTR for the memory forms (spec.md: "BIT n, r").
func (c *CPU) bitTest(n, value, xyFrom byte) {
	bit := value & (1 << n)
	f := c.F & FlagC
	f |= FlagH
	if bit == 0 {
		f |= FlagZ | FlagPV
	}
	if n == 7 && bit != 0 {
		f |= FlagS
	}
	f |= xyFrom & (FlagX | FlagY)
	c.F = f
}

func setBit(n, value byte) byte { return value | 1<<n }
func resBit(n, value byte) byte { return value &^ (1 << n) }

// rld/rrd rotate a BCD nibble between A and (HL) (spec.md: "RLD / RRD").
func (c *CPU) rld(mem byte) byte {
	newA := c.A&0xF0 | mem>>4
	newMem := mem<<4 | c.A&0x0F
	c.A = newA
	c.F = sz5p3Table[c.A] | c.F&FlagC
	return newMem
}

func (c *CPU) rrd(mem byte) byte {
	newA := c.A&0xF0 | mem&0x0F
	newMem := c.A<<4 | mem>>4
	c.A = newA
	c.F = sz5p3Table[c.A] | c.F&FlagC
	return newMem
}

// ldiStep copies (HL) to (DE), then advances/retreats HL and DE by
// delta and decrements BC (spec.md: "Block ops (LDI, LDD, ...)"). The
// undocumented X/Y bits come from bits 3 and 1 (not 5!) of
// (value + A) — a long-documented Z80 quirk, cross-checked against
// emu-pizza's cpu/z80.c.
func (c *CPU) ldiStep(delta int16) {
	hl, de, bc := c.HL(), c.DE(), c.BC()
	value := c.Mem.Read8(hl)
	c.Mem.Write8(de, value)

	c.SetHL(uint16(int32(hl) + int32(delta)))
	c.SetDE(uint16(int32(de) + int32(delta)))
	bc--
	c.SetBC(bc)

	n := value + c.A
	f := c.F &^ (FlagN | FlagH | FlagPV | FlagX | FlagY)
	if bc != 0 {
		f |= FlagPV
	}
	if n&0x08 != 0 {
		f |= FlagX
	}
	if n&0x02 != 0 {
		f |= FlagY
	}
	c.F = f
}

// cpiStep implements CPI/CPD: compare A with (HL), set flags, step HL by
// delta and decrement BC (spec.md: "For CPI/CPD: ..."). X/Y again come
// from bits 3 and 1 of (result - half-carry), not from the result
// itself.
func (c *CPU) cpiStep(delta int16) {
	hl, bc := c.HL(), c.BC()
	value := c.Mem.Read8(hl)
	a := c.A
	res := a - value

	f := c.F & FlagC
	f |= FlagN
	if res == 0 {
		f |= FlagZ
	}
	if res&0x80 != 0 {
		f |= FlagS
	}
	if halfCarrySub(a, value, 0) {
		f |= FlagH
	}

	c.SetHL(uint16(int32(hl) + int32(delta)))
	bc--
	c.SetBC(bc)
	if bc != 0 {
		f |= FlagPV
	}

	n := res
	if f&FlagH != 0 {
		n--
	}
	if n&0x08 != 0 {
		f |= FlagX
	}
	if n&0x02 != 0 {
		f |= FlagY
	}
	c.F = f
}
